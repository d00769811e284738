package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/jwanderson/weddingsite/internal/repository"
)

const (
	scopeSpreadsheets = "https://www.googleapis.com/auth/spreadsheets"

	invitesRange   = "Invites!A1:G"
	responsesRange = "Responses!A1:G"
	responsesSheet = "Responses"
)

// Config carries the service-account credentials and spreadsheet address.
// Deployment environments store the private key with literal `\n`
// sequences; NewClient unescapes them.
type Config struct {
	SpreadsheetID string
	ClientEmail   string
	PrivateKey    string
	WriteMode     repository.WriteMode
}

// Client talks to the Google Sheets backing store. It implements both
// repository.PartyStore and repository.ResponseStore. Column positions
// are resolved from the header rows once, at construction, so the sheet
// tolerates column reordering; a missing required header fails fast.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	mode          repository.WriteMode

	invites   inviteColumns
	responses responseColumns
}

// NewClient authenticates with the spreadsheet and loads both table
// schemas. Missing credentials are reported as repository.ErrNotConfigured
// before any network call is attempted.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.SpreadsheetID == "" || cfg.ClientEmail == "" || cfg.PrivateKey == "" {
		return nil, fmt.Errorf("%w: spreadsheet id, client email and private key are required", repository.ErrNotConfigured)
	}

	conf := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")),
		Scopes:     []string{scopeSpreadsheets},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	mode := cfg.WriteMode
	if mode == "" {
		mode = repository.WriteModeReplace
	}

	c := &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		mode:          mode,
	}
	if err := c.loadSchema(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// values fetches a cell range, header row included.
func (c *Client) values(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return resp.Values, nil
}

// cell returns the trimmed string content of column i, tolerating short rows.
func cell(row []interface{}, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}
