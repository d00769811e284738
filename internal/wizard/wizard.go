// Package wizard drives a guest through the RSVP flow step by step,
// holding every in-progress answer in memory until the single final
// submission. It owns no persistence; the backing store only sees the
// finished response.
package wizard

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/atomic"

	"github.com/jwanderson/weddingsite/internal/models"
)

// Step names the wizard's position in the flow.
type Step string

const (
	StepIdentifyParty       Step = "identify_party"
	StepConfirmAttendance   Step = "confirm_attendance"
	StepCollectGuestDetails Step = "collect_guest_details"
	StepCollectSongRequest  Step = "collect_song_request"
	StepSubmitting          Step = "submitting"
	StepConfirmation        Step = "confirmation"
	StepError               Step = "error"
)

// Client is the wizard's view of the RSVP service.
type Client interface {
	Lookup(ctx context.Context, identity models.PartyIdentity) (*models.PartyRecord, error)
	Submit(ctx context.Context, party *models.Party, response *models.RsvpResponse) (*models.PartyRecord, error)
}

// ErrBusy is returned when an action would start a second network call
// while one is already outstanding.
var ErrBusy = errors.New("a request is already in flight")

// GuestEntry is one guest's in-progress answers. Additional marks +1
// guests added during this session; only those may be removed or renamed.
type GuestEntry struct {
	Guest      models.Guest
	Attending  bool
	Dietary    string
	Additional bool
}

// Wizard is the RSVP flow state machine. It is meant for a single
// session and is not safe for concurrent use beyond the in-flight gate
// that blocks duplicate submissions.
type Wizard struct {
	client Client

	step     Step
	lastErr  error
	inFlight atomic.Bool

	identity models.PartyIdentity
	party    *models.Party
	guests   []GuestEntry
	song     string
	result   *models.PartyRecord
}

// New creates a wizard at the identify step.
func New(client Client) *Wizard {
	return &Wizard{client: client, step: StepIdentifyParty}
}

// Step reports the current step.
func (w *Wizard) Step() Step { return w.step }

// Err returns the error surfaced by the last failed action, if any.
func (w *Wizard) Err() error { return w.lastErr }

// Identity returns the typed identity, retained across lookup failures so
// the guest can correct and retry.
func (w *Wizard) Identity() models.PartyIdentity { return w.identity }

// Party returns the looked-up party, nil before a successful lookup.
func (w *Wizard) Party() *models.Party { return w.party }

// Guests returns the working guest list.
func (w *Wizard) Guests() []GuestEntry { return w.guests }

// Result returns the stored record after a successful submission.
func (w *Wizard) Result() *models.PartyRecord { return w.result }

// Identify looks the party up. On success the guest list is initialized
// with one entry per pre-listed guest, everyone defaulting to attending.
// On failure the wizard moves to the error step, keeps the typed
// identity, and waits for the guest to retry; there is no automatic
// retry.
func (w *Wizard) Identify(ctx context.Context, identity models.PartyIdentity) error {
	if w.step != StepIdentifyParty && w.step != StepError {
		return nil
	}
	if !w.inFlight.CAS(false, true) {
		return ErrBusy
	}
	defer w.inFlight.Store(false)

	w.identity = identity
	record, err := w.client.Lookup(ctx, identity)
	if err != nil {
		w.step = StepError
		w.lastErr = err
		return err
	}

	w.party = &record.Party
	w.guests = make([]GuestEntry, 0, len(record.Party.GuestGroup.Guests))
	for _, g := range record.Party.GuestGroup.Guests {
		w.guests = append(w.guests, GuestEntry{Guest: g, Attending: true})
	}
	w.lastErr = nil
	w.step = StepConfirmAttendance
	return nil
}

// SetAttending toggles one guest's attendance.
func (w *Wizard) SetAttending(i int, attending bool) {
	if i >= 0 && i < len(w.guests) {
		w.guests[i].Attending = attending
	}
}

// AdditionalUsed counts the +1 guests currently in the list.
func (w *Wizard) AdditionalUsed() int {
	n := 0
	for _, g := range w.guests {
		if g.Additional {
			n++
		}
	}
	return n
}

// AddGuest appends a blank +1 entry, attending by default. At the
// party's additional-guest limit this is a no-op, not an error: the UI
// disables the control rather than complaining.
func (w *Wizard) AddGuest() bool {
	if w.party == nil || w.AdditionalUsed() >= w.party.GuestGroup.AdditionalGuests {
		return false
	}
	w.guests = append(w.guests, GuestEntry{Attending: true, Additional: true})
	return true
}

// RemoveGuest deletes a +1 entry, freeing capacity against the limit.
// Pre-listed guests cannot be removed.
func (w *Wizard) RemoveGuest(i int) bool {
	if i < 0 || i >= len(w.guests) || !w.guests[i].Additional {
		return false
	}
	w.guests = append(w.guests[:i], w.guests[i+1:]...)
	return true
}

// AttendingCount sums the guests currently marked attending.
func (w *Wizard) AttendingCount() int {
	n := 0
	for _, g := range w.guests {
		if g.Attending {
			n++
		}
	}
	return n
}

// ConfirmAttendance leaves the attendance step. With nobody attending
// there is nothing left to collect, so the wizard submits immediately;
// otherwise it moves on to guest details.
func (w *Wizard) ConfirmAttendance(ctx context.Context) error {
	if w.step != StepConfirmAttendance {
		return nil
	}
	if w.AttendingCount() == 0 {
		return w.SubmitResponse(ctx)
	}
	w.step = StepCollectGuestDetails
	return nil
}

// SetGuestName fills in a +1 guest's name. Pre-listed names are fixed.
func (w *Wizard) SetGuestName(i int, firstName, lastName string) {
	if i >= 0 && i < len(w.guests) && w.guests[i].Additional {
		w.guests[i].Guest.FirstName = strings.TrimSpace(firstName)
		w.guests[i].Guest.LastName = strings.TrimSpace(lastName)
	}
}

// SetDietary records a guest's dietary note. Empty text is fine.
func (w *Wizard) SetDietary(i int, dietary string) {
	if i >= 0 && i < len(w.guests) {
		w.guests[i].Dietary = dietary
	}
}

// ConfirmDetails validates that every attending guest has a name and
// advances to the song request. The error lists the offending entries;
// the step does not advance until they are fixed.
func (w *Wizard) ConfirmDetails() error {
	if w.step != StepCollectGuestDetails {
		return nil
	}
	for _, g := range w.guests {
		if g.Attending && (g.Guest.FirstName == "" || g.Guest.LastName == "") {
			err := errors.New("every attending guest needs a first and last name")
			w.lastErr = err
			return err
		}
	}
	w.lastErr = nil
	w.step = StepCollectSongRequest
	return nil
}

// SetSongRequest records the optional song request.
func (w *Wizard) SetSongRequest(song string) {
	w.song = song
}

// SubmitResponse sends the finalized response. Only one submission may
// be outstanding; the trigger stays disabled while the call runs. On
// failure the wizard returns to the song step (or attendance step when
// nobody attends) so the guest can retry by hand.
func (w *Wizard) SubmitResponse(ctx context.Context) error {
	if w.step != StepCollectSongRequest && w.step != StepConfirmAttendance {
		return nil
	}
	if !w.inFlight.CAS(false, true) {
		return ErrBusy
	}
	defer w.inFlight.Store(false)

	retreat := w.step
	w.step = StepSubmitting

	record, err := w.client.Submit(ctx, w.party, w.buildResponse())
	if err != nil {
		w.step = retreat
		w.lastErr = err
		return err
	}

	w.result = record
	w.lastErr = nil
	w.step = StepConfirmation
	return nil
}

// Confirmation describes the terminal screen: celebratory with the
// party's allowed events when anyone attends, regretful otherwise.
type Confirmation struct {
	Attending     bool
	AttendingNum  int
	AllowedEvents []string
}

// Confirmation returns the terminal screen content after submission.
func (w *Wizard) Confirmation() *Confirmation {
	if w.step != StepConfirmation || w.result == nil {
		return nil
	}
	c := &Confirmation{
		Attending:    w.result.Response.AttendingCount() > 0,
		AttendingNum: w.result.Response.AttendingCount(),
	}
	if c.Attending {
		c.AllowedEvents = w.party.GuestGroup.AllowedEvents
	}
	return c
}

// buildResponse flattens the working entries into the submission payload.
func (w *Wizard) buildResponse() *models.RsvpResponse {
	resp := &models.RsvpResponse{SongRequest: w.song}
	for _, g := range w.guests {
		resp.Guests = append(resp.Guests, models.GuestResponse{
			Guest:               g.Guest,
			Attending:           g.Attending,
			DietaryRestrictions: g.Dietary,
		})
	}
	return resp
}
