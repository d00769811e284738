package mem

import (
	"context"
	"strings"
	"sync"

	"github.com/jwanderson/weddingsite/internal/models"
	"github.com/jwanderson/weddingsite/internal/repository"
)

// Store is an in-memory implementation of both repository interfaces,
// used by tests and by the `mem` store backend for local development.
type Store struct {
	mu        sync.RWMutex
	mode      repository.WriteMode
	parties   []*models.Party
	responses map[string]*models.RsvpResponse
}

// NewStore creates a store pre-loaded with the given parties.
func NewStore(mode repository.WriteMode, parties ...*models.Party) *Store {
	return &Store{
		mode:      mode,
		parties:   parties,
		responses: make(map[string]*models.RsvpResponse),
	}
}

func (s *Store) GetByCode(ctx context.Context, code string) (*models.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	code = strings.TrimSpace(code)
	for _, p := range s.parties {
		if strings.EqualFold(p.InviteCode, code) {
			return cloneParty(p), nil
		}
	}
	return nil, nil
}

func (s *Store) GetByName(ctx context.Context, firstName, lastName string) (*models.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	for _, p := range s.parties {
		for _, g := range p.GuestGroup.Guests {
			if strings.EqualFold(g.FirstName, firstName) && strings.EqualFold(g.LastName, lastName) {
				return cloneParty(p), nil
			}
		}
	}
	return nil, nil
}

func (s *Store) GetByID(ctx context.Context, partyID string) (*models.Party, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.parties {
		if p.ID == partyID {
			return cloneParty(p), nil
		}
	}
	return nil, nil
}

func (s *Store) Save(ctx context.Context, partyID string, response *models.RsvpResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneResponse(response)
	if s.mode == repository.WriteModeAppend {
		if prev, ok := s.responses[partyID]; ok {
			stored.Guests = append(append([]models.GuestResponse{}, prev.Guests...), stored.Guests...)
		}
	}
	s.responses[partyID] = stored
	return nil
}

func (s *Store) GetByParty(ctx context.Context, partyID string) (*models.RsvpResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp, ok := s.responses[partyID]
	if !ok {
		return nil, nil
	}
	return cloneResponse(resp), nil
}

func cloneParty(p *models.Party) *models.Party {
	c := *p
	c.GuestGroup.Guests = append([]models.Guest{}, p.GuestGroup.Guests...)
	c.GuestGroup.AllowedEvents = append([]string{}, p.GuestGroup.AllowedEvents...)
	return &c
}

func cloneResponse(r *models.RsvpResponse) *models.RsvpResponse {
	c := *r
	c.Guests = append([]models.GuestResponse{}, r.Guests...)
	return &c
}
