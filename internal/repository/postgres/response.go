package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jwanderson/weddingsite/internal/models"
	"github.com/jwanderson/weddingsite/internal/repository"
)

type responseStore struct {
	db   *sql.DB
	mode repository.WriteMode
}

// NewResponseStore creates a Postgres-backed response store. Replace mode
// swaps the party's rows inside a transaction, so this backend happens to
// be atomic where the spreadsheet backend is not.
func NewResponseStore(db *sql.DB, mode repository.WriteMode) repository.ResponseStore {
	if mode == "" {
		mode = repository.WriteModeReplace
	}
	return &responseStore{db: db, mode: mode}
}

func (s *responseStore) Save(ctx context.Context, partyID string, response *models.RsvpResponse) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin response transaction: %w", err)
	}
	defer tx.Rollback()

	if s.mode == repository.WriteModeReplace {
		if _, err := tx.ExecContext(ctx, `DELETE FROM responses WHERE party_id = $1`, partyID); err != nil {
			return fmt.Errorf("failed to clear previous response: %w", err)
		}
	}

	insert := `
		INSERT INTO responses (party_id, first_name, last_name, attending, dietary_restrictions, song_request, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, g := range response.Guests {
		if _, err := tx.ExecContext(ctx, insert,
			partyID,
			g.FirstName,
			g.LastName,
			g.Attending,
			g.DietaryRestrictions,
			response.SongRequest,
			response.SubmittedAt,
		); err != nil {
			return fmt.Errorf("failed to insert response row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit response: %w", err)
	}
	return nil
}

func (s *responseStore) GetByParty(ctx context.Context, partyID string) (*models.RsvpResponse, error) {
	query := `
		SELECT first_name, last_name, attending, dietary_restrictions, song_request, submitted_at
		FROM responses
		WHERE party_id = $1
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load response for party %s: %w", partyID, err)
	}
	defer rows.Close()

	var resp *models.RsvpResponse
	for rows.Next() {
		var g models.GuestResponse
		var songRequest string
		var submittedAt sql.NullTime
		if err := rows.Scan(&g.FirstName, &g.LastName, &g.Attending,
			&g.DietaryRestrictions, &songRequest, &submittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response row: %w", err)
		}
		if resp == nil {
			resp = &models.RsvpResponse{}
		}
		resp.Guests = append(resp.Guests, g)
		resp.SongRequest = songRequest
		if submittedAt.Valid {
			resp.SubmittedAt = submittedAt.Time
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate response rows: %w", err)
	}

	return resp, nil
}
