package sheets

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jwanderson/weddingsite/internal/models"
)

// The invite table holds one row per pre-listed guest; rows belonging to
// the same party share a party_id, and the party-level columns
// (additional_guests, allowed_events, primary_contact) are repeated on
// each of them. Matching either an invite code or a guest name resolves
// the party_id first, then every row sharing it is folded into one Party.

func (c *Client) GetByCode(ctx context.Context, code string) (*models.Party, error) {
	rows, err := c.values(ctx, invitesRange)
	if err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	partyID := ""
	for _, row := range dataRows(rows) {
		if strings.EqualFold(cell(row, c.invites.inviteCode), code) {
			partyID = cell(row, c.invites.partyID)
			break
		}
	}
	if partyID == "" {
		return nil, nil
	}
	return partyFromRows(dataRows(rows), c.invites, partyID), nil
}

func (c *Client) GetByName(ctx context.Context, firstName, lastName string) (*models.Party, error) {
	rows, err := c.values(ctx, invitesRange)
	if err != nil {
		return nil, err
	}

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	partyID := ""
	for _, row := range dataRows(rows) {
		if strings.EqualFold(cell(row, c.invites.firstName), firstName) &&
			strings.EqualFold(cell(row, c.invites.lastName), lastName) {
			partyID = cell(row, c.invites.partyID)
			break
		}
	}
	if partyID == "" {
		return nil, nil
	}
	return partyFromRows(dataRows(rows), c.invites, partyID), nil
}

func (c *Client) GetByID(ctx context.Context, partyID string) (*models.Party, error) {
	rows, err := c.values(ctx, invitesRange)
	if err != nil {
		return nil, err
	}
	return partyFromRows(dataRows(rows), c.invites, strings.TrimSpace(partyID)), nil
}

// dataRows skips the header row.
func dataRows(rows [][]interface{}) [][]interface{} {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

// partyFromRows aggregates every row sharing partyID into one Party.
// Party-level columns are taken from the first matching row. Returns nil
// when no row matches.
func partyFromRows(rows [][]interface{}, cols inviteColumns, partyID string) *models.Party {
	if partyID == "" {
		return nil
	}

	var party *models.Party
	for _, row := range rows {
		if cell(row, cols.partyID) != partyID {
			continue
		}
		if party == nil {
			party = &models.Party{
				ID:         partyID,
				InviteCode: cell(row, cols.inviteCode),
				GuestGroup: models.GuestGroup{
					AdditionalGuests: parseIntCell(cell(row, cols.additionalGuests)),
					AllowedEvents:    parseEventsCell(cell(row, cols.allowedEvents)),
					PrimaryContact:   cell(row, cols.primaryContact),
				},
			}
		}
		party.GuestGroup.Guests = append(party.GuestGroup.Guests, models.Guest{
			FirstName: cell(row, cols.firstName),
			LastName:  cell(row, cols.lastName),
		})
	}
	return party
}

func parseIntCell(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseEventsCell reads the allowed-events cell, which is stored as a
// JSON array (the original seeding wrote JSON); a plain comma-separated
// list is accepted as a fallback for hand-edited sheets.
func parseEventsCell(s string) []string {
	if s == "" {
		return nil
	}
	var events []string
	if err := json.Unmarshal([]byte(s), &events); err == nil {
		return events
	}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			events = append(events, part)
		}
	}
	return events
}
