package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/jwanderson/weddingsite/internal/models"
	"github.com/jwanderson/weddingsite/internal/repository"
	"github.com/jwanderson/weddingsite/internal/repository/mem"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testService(mode repository.WriteMode) *Service {
	store := mem.NewStore(mode, mem.Seed()...)
	return New(testLogger(), store, store)
}

func attendingResponse(guests ...models.Guest) *models.RsvpResponse {
	resp := &models.RsvpResponse{}
	for _, g := range guests {
		resp.Guests = append(resp.Guests, models.GuestResponse{Guest: g, Attending: true})
	}
	return resp
}

func TestLookupByCode(t *testing.T) {
	svc := testService(repository.WriteModeReplace)

	record, err := svc.Lookup(context.Background(), models.CodeIdentity("JOEL2024"))
	if err != nil {
		t.Fatal(err)
	}
	if have, want := record.Party.ID, "P-JOEL"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
	if record.Response != nil {
		t.Errorf("have %v, want no prior response", record.Response)
	}
}

func TestLookupByCodeNormalizesInput(t *testing.T) {
	svc := testService(repository.WriteModeReplace)

	for _, code := range []string{"joel2024", "  JOEL2024  ", "Joel2024"} {
		record, err := svc.Lookup(context.Background(), models.CodeIdentity(code))
		if err != nil {
			t.Fatalf("code %q: %v", code, err)
		}
		if have, want := record.Party.ID, "P-JOEL"; have != want {
			t.Errorf("code %q: have %v, want %v", code, have, want)
		}
	}
}

func TestLookupNotFound(t *testing.T) {
	svc := testService(repository.WriteModeReplace)

	_, err := svc.Lookup(context.Background(), models.CodeIdentity("NOTREAL"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("have %v, want %v", err, ErrNotFound)
	}
}

func TestLookupByNameReturnsWholeParty(t *testing.T) {
	svc := testService(repository.WriteModeReplace)

	record, err := svc.Lookup(context.Background(), models.NameIdentity("Jane", "Doe"))
	if err != nil {
		t.Fatal(err)
	}
	if have, want := record.Party.ID, "P1"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
	if have, want := len(record.Party.GuestGroup.Guests), 2; have != want {
		t.Errorf("have %v guests, want %v", have, want)
	}
}

func TestLookupBlankIdentity(t *testing.T) {
	svc := testService(repository.WriteModeReplace)

	for _, identity := range []models.PartyIdentity{
		models.CodeIdentity("   "),
		models.NameIdentity("Jane", ""),
		models.NameIdentity("", "Doe"),
		models.PartyIDIdentity(""),
	} {
		_, err := svc.Lookup(context.Background(), identity)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("identity %v: have %v, want %v", identity, err, ErrValidation)
		}
	}
}

func TestSubmitStampsSubmissionTime(t *testing.T) {
	svc := testService(repository.WriteModeReplace)

	resp := attendingResponse(models.Guest{FirstName: "Joel", LastName: "Anderson"})
	record, err := svc.Submit(context.Background(), models.CodeIdentity("JOEL2024"), resp)
	if err != nil {
		t.Fatal(err)
	}
	if record.Response.SubmittedAt.IsZero() {
		t.Error("submission time should be stamped server-side")
	}

	// A later lookup sees the recorded response.
	looked, err := svc.Lookup(context.Background(), models.CodeIdentity("JOEL2024"))
	if err != nil {
		t.Fatal(err)
	}
	if looked.Response == nil {
		t.Fatal("expected a recorded response")
	}
	if have, want := looked.Response.AttendingCount(), 1; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestSubmitUnknownParty(t *testing.T) {
	svc := testService(repository.WriteModeReplace)

	resp := attendingResponse(models.Guest{FirstName: "Joel", LastName: "Anderson"})
	_, err := svc.Submit(context.Background(), models.CodeIdentity("NOTREAL"), resp)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("have %v, want %v", err, ErrNotFound)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := testService(repository.WriteModeReplace)

	testCases := map[string]*models.RsvpResponse{
		"nil response":    nil,
		"no guests":       {},
		"unnamed guest":   attendingResponse(models.Guest{FirstName: "Joel", LastName: "Anderson"}, models.Guest{}),
		"too many guests": attendingResponse(models.Guest{FirstName: "Jane", LastName: "Doe"}, models.Guest{FirstName: "John", LastName: "Doe"}, models.Guest{FirstName: "Jim", LastName: "Doe"}),
	}

	for name, resp := range testCases {
		identity := models.CodeIdentity("JOEL2024")
		if name == "too many guests" {
			identity = models.CodeIdentity("DOE2024")
		}
		_, err := svc.Submit(context.Background(), identity, resp)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: have %v, want %v", name, err, ErrValidation)
		}
	}
}

func TestSubmitNotAttendingNeedsNoName(t *testing.T) {
	svc := testService(repository.WriteModeReplace)

	resp := &models.RsvpResponse{Guests: []models.GuestResponse{
		{Guest: models.Guest{FirstName: "Joel", LastName: "Anderson"}, Attending: false},
	}}
	if _, err := svc.Submit(context.Background(), models.CodeIdentity("JOEL2024"), resp); err != nil {
		t.Fatal(err)
	}
}

func TestSubmitReplaceIsIdempotent(t *testing.T) {
	svc := testService(repository.WriteModeReplace)
	identity := models.CodeIdentity("JOEL2024")

	first := attendingResponse(
		models.Guest{FirstName: "Joel", LastName: "Anderson"},
		models.Guest{FirstName: "Dana", LastName: "Lee"},
	)
	if _, err := svc.Submit(context.Background(), identity, first); err != nil {
		t.Fatal(err)
	}

	// The guest changes their mind and resubmits alone.
	second := attendingResponse(models.Guest{FirstName: "Joel", LastName: "Anderson"})
	if _, err := svc.Submit(context.Background(), identity, second); err != nil {
		t.Fatal(err)
	}

	record, err := svc.Lookup(context.Background(), identity)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := len(record.Response.Guests), 1; have != want {
		t.Errorf("have %v guests, want %v (replace should drop the earlier rows)", have, want)
	}
}

func TestSubmitAppendKeepsEarlierRows(t *testing.T) {
	svc := testService(repository.WriteModeAppend)
	identity := models.CodeIdentity("DOE2024")

	if _, err := svc.Submit(context.Background(), identity, attendingResponse(models.Guest{FirstName: "Jane", LastName: "Doe"})); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(context.Background(), identity, attendingResponse(models.Guest{FirstName: "John", LastName: "Doe"})); err != nil {
		t.Fatal(err)
	}

	record, err := svc.Lookup(context.Background(), identity)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := len(record.Response.Guests), 2; have != want {
		t.Errorf("have %v guests, want %v (append accumulates rows)", have, want)
	}
}

type failingStore struct{}

func (failingStore) GetByCode(ctx context.Context, code string) (*models.Party, error) {
	return nil, errors.New("spreadsheet unavailable")
}

func (failingStore) GetByName(ctx context.Context, firstName, lastName string) (*models.Party, error) {
	return nil, errors.New("spreadsheet unavailable")
}

func (failingStore) GetByID(ctx context.Context, partyID string) (*models.Party, error) {
	return nil, errors.New("spreadsheet unavailable")
}

func TestLookupStoreFailure(t *testing.T) {
	store := mem.NewStore(repository.WriteModeReplace)
	svc := New(testLogger(), failingStore{}, store)

	_, err := svc.Lookup(context.Background(), models.CodeIdentity("JOEL2024"))
	if !errors.Is(err, ErrStore) {
		t.Errorf("have %v, want %v", err, ErrStore)
	}
}
