package sheets

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jwanderson/weddingsite/internal/models"
	"github.com/jwanderson/weddingsite/internal/repository"
)

// Save writes one response row per guest. In replace mode the rows that
// already belong to the party are overwritten in place (and blanked when
// the new submission has fewer guests), so re-submission is idempotent.
// In append mode rows are always added at the bottom, matching the
// original responses-table deployment.
//
// Writes are per-row with no transaction support from the store: a
// failure partway through leaves the table partially written.
func (c *Client) Save(ctx context.Context, partyID string, response *models.RsvpResponse) error {
	newRows := c.responseRows(partyID, response)

	if c.mode == repository.WriteModeAppend {
		return c.appendRows(ctx, newRows)
	}

	existing, err := c.values(ctx, responsesRange)
	if err != nil {
		return err
	}

	// 1-based sheet row numbers currently holding this party's rows.
	var taken []int
	for i, row := range dataRows(existing) {
		if cell(row, c.responses.partyID) == partyID {
			taken = append(taken, i+2)
		}
	}

	for i, rowNum := range taken {
		var row []interface{}
		if i < len(newRows) {
			row = newRows[i]
		} else {
			row = blankRow(maxColumn(c.responses) + 1)
		}
		if err := c.updateRow(ctx, rowNum, row); err != nil {
			return err
		}
	}
	if len(newRows) > len(taken) {
		return c.appendRows(ctx, newRows[len(taken):])
	}
	return nil
}

// GetByParty rebuilds the stored response from the party's rows. Under
// append mode a re-submitted party yields its duplicated rows verbatim.
func (c *Client) GetByParty(ctx context.Context, partyID string) (*models.RsvpResponse, error) {
	rows, err := c.values(ctx, responsesRange)
	if err != nil {
		return nil, err
	}

	var resp *models.RsvpResponse
	for _, row := range dataRows(rows) {
		if cell(row, c.responses.partyID) != partyID {
			continue
		}
		if resp == nil {
			resp = &models.RsvpResponse{}
		}
		resp.Guests = append(resp.Guests, models.GuestResponse{
			Guest: models.Guest{
				FirstName: cell(row, c.responses.firstName),
				LastName:  cell(row, c.responses.lastName),
			},
			Attending:           cell(row, c.responses.attending) == "true",
			DietaryRestrictions: cell(row, c.responses.dietary),
		})
		resp.SongRequest = cell(row, c.responses.songRequest)
		if ts, err := time.Parse(time.RFC3339, cell(row, c.responses.submittedAt)); err == nil {
			resp.SubmittedAt = ts
		}
	}
	return resp, nil
}

// responseRows flattens a submission into sheet rows laid out by the
// mapped response columns.
func (c *Client) responseRows(partyID string, response *models.RsvpResponse) [][]interface{} {
	width := maxColumn(c.responses) + 1
	rows := make([][]interface{}, 0, len(response.Guests))
	for _, g := range response.Guests {
		row := blankRow(width)
		row[c.responses.partyID] = partyID
		row[c.responses.firstName] = g.FirstName
		row[c.responses.lastName] = g.LastName
		row[c.responses.attending] = strconv.FormatBool(g.Attending)
		row[c.responses.dietary] = g.DietaryRestrictions
		row[c.responses.songRequest] = response.SongRequest
		row[c.responses.submittedAt] = response.SubmittedAt.Format(time.RFC3339)
		rows = append(rows, row)
	}
	return rows
}

func (c *Client) appendRows(ctx context.Context, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, responsesRange, &sheetsapi.ValueRange{
		Values: rows,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append response rows: %w", err)
	}
	return nil
}

func (c *Client) updateRow(ctx context.Context, rowNum int, row []interface{}) error {
	writeRange := fmt.Sprintf("%s!A%d", responsesSheet, rowNum)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, &sheetsapi.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update response row %d: %w", rowNum, err)
	}
	return nil
}

func blankRow(width int) []interface{} {
	row := make([]interface{}, width)
	for i := range row {
		row[i] = ""
	}
	return row
}

func maxColumn(cols responseColumns) int {
	max := cols.partyID
	for _, i := range []int{cols.firstName, cols.lastName, cols.attending, cols.dietary, cols.songRequest, cols.submittedAt} {
		if i > max {
			max = i
		}
	}
	return max
}
