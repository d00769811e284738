package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jwanderson/weddingsite/internal/models"
)

// ErrPartyNotFound is returned by the HTTP client when the server cannot
// resolve the typed identity.
var ErrPartyNotFound = errors.New("party not found")

// HTTPClient talks to the RSVP API. It performs no retries; recovery is
// always the guest re-submitting the form.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a client against the given base URL, e.g.
// "https://example.com". A nil httpClient falls back to
// http.DefaultClient.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: baseURL, http: httpClient}
}

func (c *HTTPClient) Lookup(ctx context.Context, identity models.PartyIdentity) (*models.PartyRecord, error) {
	var endpoint string
	switch identity.Kind {
	case models.IdentityKindCode:
		endpoint = c.baseURL + "/api/rsvp/" + url.PathEscape(identity.Code)
	case models.IdentityKindName:
		q := url.Values{}
		q.Set("firstName", identity.FirstName)
		q.Set("lastName", identity.LastName)
		endpoint = c.baseURL + "/api/rsvp?" + q.Encode()
	default:
		return nil, fmt.Errorf("unsupported identity kind %q", identity.Kind)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *HTTPClient) Submit(ctx context.Context, party *models.Party, response *models.RsvpResponse) (*models.PartyRecord, error) {
	body := struct {
		InviteCode string               `json:"inviteCode,omitempty"`
		PartyID    string               `json:"partyId,omitempty"`
		Response   *models.RsvpResponse `json:"response"`
	}{Response: response}
	if party.InviteCode != "" {
		body.InviteCode = party.InviteCode
	} else {
		body.PartyID = party.ID
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/rsvp", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *HTTPClient) do(req *http.Request) (*models.PartyRecord, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPartyNotFound
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("rsvp request failed: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("rsvp request failed with status %d", resp.StatusCode)
	}

	var record models.PartyRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode rsvp response: %w", err)
	}
	return &record, nil
}
