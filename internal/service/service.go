package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/jwanderson/weddingsite/internal/models"
	"github.com/jwanderson/weddingsite/internal/repository"
)

// Service is the RSVP core: it resolves a party from whatever identity
// the guest supplied and records their finalized response. It holds no
// state of its own; the backing stores are the system of record.
type Service struct {
	logger    *logrus.Logger
	parties   repository.PartyStore
	responses repository.ResponseStore
}

// New creates a Service with explicitly injected stores.
func New(logger *logrus.Logger, parties repository.PartyStore, responses repository.ResponseStore) *Service {
	return &Service{
		logger:    logger,
		parties:   parties,
		responses: responses,
	}
}

// Lookup resolves an identity to its party and any previously recorded
// response. A miss is ErrNotFound, never a raw store error.
func (s *Service) Lookup(ctx context.Context, identity models.PartyIdentity) (*models.PartyRecord, error) {
	party, err := s.resolveParty(ctx, identity)
	if err != nil {
		return nil, err
	}

	record := &models.PartyRecord{Party: *party}
	response, err := s.responses.GetByParty(ctx, party.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	record.Response = response
	return record, nil
}

// Submit validates and records a party's finalized response, stamping the
// submission time server-side. The stored record is returned so the
// caller sees exactly what the table now holds.
func (s *Service) Submit(ctx context.Context, identity models.PartyIdentity, response *models.RsvpResponse) (*models.PartyRecord, error) {
	party, err := s.resolveParty(ctx, identity)
	if err != nil {
		return nil, err
	}

	if err := validateSubmission(party, response); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	response.SubmittedAt = time.Now().UTC()

	if err := s.responses.Save(ctx, party.ID, response); err != nil {
		s.logger.WithError(err).WithField("party_id", party.ID).Error("Failed to save RSVP response")
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	s.logger.WithFields(logrus.Fields{
		"party_id":  party.ID,
		"attending": response.AttendingCount(),
		"guests":    len(response.Guests),
	}).Info("Recorded RSVP response")

	return &models.PartyRecord{Party: *party, Response: response}, nil
}

// resolveParty dispatches on the identity tag, trimming and case-folding
// guest input before it reaches a store.
func (s *Service) resolveParty(ctx context.Context, identity models.PartyIdentity) (*models.Party, error) {
	var (
		party *models.Party
		err   error
	)

	switch identity.Kind {
	case models.IdentityKindCode:
		code := strings.TrimSpace(identity.Code)
		if code == "" {
			return nil, fmt.Errorf("%w: invite code is required", ErrValidation)
		}
		party, err = s.parties.GetByCode(ctx, code)
	case models.IdentityKindName:
		firstName := strings.TrimSpace(identity.FirstName)
		lastName := strings.TrimSpace(identity.LastName)
		if firstName == "" || lastName == "" {
			return nil, fmt.Errorf("%w: first and last name are required", ErrValidation)
		}
		party, err = s.parties.GetByName(ctx, firstName, lastName)
	case models.IdentityKindParty:
		partyID := strings.TrimSpace(identity.PartyID)
		if partyID == "" {
			return nil, fmt.Errorf("%w: party id is required", ErrValidation)
		}
		party, err = s.parties.GetByID(ctx, partyID)
	default:
		return nil, fmt.Errorf("%w: unknown identity kind %q", ErrValidation, identity.Kind)
	}

	if err != nil {
		s.logger.WithError(err).WithField("identity", identity.String()).Error("Party lookup failed")
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if party == nil {
		return nil, ErrNotFound
	}
	return party, nil
}

// validateSubmission checks the finalized response against the party it
// is for, collecting every failure rather than stopping at the first.
// Empty dietary text is allowed; names are only required for guests who
// will be recorded as attending.
func validateSubmission(party *models.Party, response *models.RsvpResponse) error {
	var result *multierror.Error

	if response == nil || len(response.Guests) == 0 {
		result = multierror.Append(result, fmt.Errorf("response must include at least one guest"))
		return result.ErrorOrNil()
	}

	if len(response.Guests) > party.MaxGuests() {
		result = multierror.Append(result, fmt.Errorf(
			"response has %d guests but the party allows at most %d",
			len(response.Guests), party.MaxGuests()))
	}

	for i, g := range response.Guests {
		if !g.Attending {
			continue
		}
		if strings.TrimSpace(g.FirstName) == "" || strings.TrimSpace(g.LastName) == "" {
			result = multierror.Append(result, fmt.Errorf(
				"guest %d is attending but has no name", i+1))
		}
	}

	return result.ErrorOrNil()
}
