package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwanderson/weddingsite/internal/repository"
)

// Column indexes resolved from the header row of each table. Rows are
// addressed by header name, never by fixed position, so the sheet owner
// can reorder columns without breaking the site.

type inviteColumns struct {
	partyID          int
	inviteCode       int
	firstName        int
	lastName         int
	additionalGuests int
	allowedEvents    int
	primaryContact   int
}

type responseColumns struct {
	partyID     int
	firstName   int
	lastName    int
	attending   int
	dietary     int
	songRequest int
	submittedAt int
}

func (c *Client) loadSchema(ctx context.Context) error {
	inviteHeader, err := c.values(ctx, "Invites!1:1")
	if err != nil {
		return err
	}
	responseHeader, err := c.values(ctx, "Responses!1:1")
	if err != nil {
		return err
	}

	c.invites, err = mapInviteColumns(headerRow(inviteHeader))
	if err != nil {
		return err
	}
	c.responses, err = mapResponseColumns(headerRow(responseHeader))
	return err
}

func headerRow(rows [][]interface{}) []interface{} {
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

func mapInviteColumns(header []interface{}) (inviteColumns, error) {
	idx := indexHeader(header)
	var cols inviteColumns
	var err error
	for _, bind := range []struct {
		name string
		dst  *int
	}{
		{"party_id", &cols.partyID},
		{"invite_code", &cols.inviteCode},
		{"first_name", &cols.firstName},
		{"last_name", &cols.lastName},
		{"additional_guests", &cols.additionalGuests},
		{"allowed_events", &cols.allowedEvents},
		{"primary_contact", &cols.primaryContact},
	} {
		if *bind.dst, err = column(idx, "Invites", bind.name); err != nil {
			return inviteColumns{}, err
		}
	}
	return cols, nil
}

func mapResponseColumns(header []interface{}) (responseColumns, error) {
	idx := indexHeader(header)
	var cols responseColumns
	var err error
	for _, bind := range []struct {
		name string
		dst  *int
	}{
		{"party_id", &cols.partyID},
		{"first_name", &cols.firstName},
		{"last_name", &cols.lastName},
		{"attending", &cols.attending},
		{"dietary_restrictions", &cols.dietary},
		{"song_request", &cols.songRequest},
		{"submitted_at", &cols.submittedAt},
	} {
		if *bind.dst, err = column(idx, "Responses", bind.name); err != nil {
			return responseColumns{}, err
		}
	}
	return cols, nil
}

// indexHeader maps normalized header names to their column positions.
func indexHeader(header []interface{}) map[string]int {
	idx := make(map[string]int, len(header))
	for i, v := range header {
		name := strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))
		if name == "" {
			continue
		}
		if _, exists := idx[name]; !exists {
			idx[name] = i
		}
	}
	return idx
}

func column(idx map[string]int, table, name string) (int, error) {
	i, ok := idx[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s table is missing required header %q", repository.ErrNotConfigured, table, name)
	}
	return i, nil
}
