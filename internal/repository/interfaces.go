package repository

import (
	"context"

	"github.com/jwanderson/weddingsite/internal/models"
)

// WriteMode selects how a new submission relates to response rows already
// stored for the same party. Replace locates prior rows and overwrites
// them, making repeated submissions idempotent. Append blindly adds rows,
// which matches the original responses-table deployment but duplicates
// rows on re-submission.
type WriteMode string

const (
	WriteModeReplace WriteMode = "replace"
	WriteModeAppend  WriteMode = "append"
)

// PartyStore reads seeded invitation data. Lookups that match nothing
// return (nil, nil); errors are reserved for store access failures.
type PartyStore interface {
	GetByCode(ctx context.Context, code string) (*models.Party, error)
	GetByName(ctx context.Context, firstName, lastName string) (*models.Party, error)
	GetByID(ctx context.Context, partyID string) (*models.Party, error)
}

// ResponseStore persists submitted responses, one row per guest.
type ResponseStore interface {
	Save(ctx context.Context, partyID string, response *models.RsvpResponse) error
	GetByParty(ctx context.Context, partyID string) (*models.RsvpResponse, error)
}
