package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/jwanderson/weddingsite/internal/models"
	"github.com/jwanderson/weddingsite/internal/repository"
)

type partyStore struct {
	db *sql.DB
}

// NewPartyStore creates a Postgres-backed party store. The invites table
// holds one row per pre-listed guest with the party-level columns
// repeated, mirroring the spreadsheet layout.
func NewPartyStore(db *sql.DB) repository.PartyStore {
	return &partyStore{db: db}
}

func (s *partyStore) GetByCode(ctx context.Context, code string) (*models.Party, error) {
	query := `
		SELECT party_id
		FROM invites
		WHERE lower(invite_code) = lower(trim($1))
		LIMIT 1`

	var partyID string
	err := s.db.QueryRowContext(ctx, query, code).Scan(&partyID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve invite code: %w", err)
	}

	return s.loadParty(ctx, partyID)
}

func (s *partyStore) GetByName(ctx context.Context, firstName, lastName string) (*models.Party, error) {
	query := `
		SELECT party_id
		FROM invites
		WHERE lower(first_name) = lower(trim($1)) AND lower(last_name) = lower(trim($2))
		LIMIT 1`

	var partyID string
	err := s.db.QueryRowContext(ctx, query, firstName, lastName).Scan(&partyID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve guest name: %w", err)
	}

	return s.loadParty(ctx, partyID)
}

func (s *partyStore) GetByID(ctx context.Context, partyID string) (*models.Party, error) {
	return s.loadParty(ctx, partyID)
}

// loadParty aggregates every invite row sharing the party id into one
// Party. Returns (nil, nil) when the id matches nothing.
func (s *partyStore) loadParty(ctx context.Context, partyID string) (*models.Party, error) {
	query := `
		SELECT invite_code, first_name, last_name, additional_guests, allowed_events, primary_contact
		FROM invites
		WHERE party_id = $1
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load party %s: %w", partyID, err)
	}
	defer rows.Close()

	var party *models.Party
	for rows.Next() {
		var (
			inviteCode, firstName, lastName, primaryContact string
			additionalGuests                                int
			allowedEvents                                   []string
		)
		if err := rows.Scan(&inviteCode, &firstName, &lastName, &additionalGuests,
			pq.Array(&allowedEvents), &primaryContact); err != nil {
			return nil, fmt.Errorf("failed to scan invite row: %w", err)
		}
		if party == nil {
			party = &models.Party{
				ID:         partyID,
				InviteCode: inviteCode,
				GuestGroup: models.GuestGroup{
					AdditionalGuests: additionalGuests,
					AllowedEvents:    allowedEvents,
					PrimaryContact:   primaryContact,
				},
			}
		}
		party.GuestGroup.Guests = append(party.GuestGroup.Guests, models.Guest{
			FirstName: firstName,
			LastName:  lastName,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invite rows: %w", err)
	}

	return party, nil
}
