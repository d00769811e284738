package sheets

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jwanderson/weddingsite/internal/repository"
)

func TestNewClientMissingCredentials(t *testing.T) {
	_, err := NewClient(context.Background(), Config{SpreadsheetID: "sheet-id"})
	if !errors.Is(err, repository.ErrNotConfigured) {
		t.Errorf("have %v, want %v", err, repository.ErrNotConfigured)
	}
}

func TestMapInviteColumns(t *testing.T) {
	header := []interface{}{
		"party_id", "invite_code", "first_name", "last_name",
		"additional_guests", "allowed_events", "primary_contact",
	}

	cols, err := mapInviteColumns(header)
	if err != nil {
		t.Fatal(err)
	}
	want := inviteColumns{
		partyID:          0,
		inviteCode:       1,
		firstName:        2,
		lastName:         3,
		additionalGuests: 4,
		allowedEvents:    5,
		primaryContact:   6,
	}
	if cols != want {
		t.Errorf("have %+v, want %+v", cols, want)
	}
}

func TestMapInviteColumnsToleratesReordering(t *testing.T) {
	// The sheet owner moved columns around and changed header casing.
	header := []interface{}{
		"Invite_Code", " first_name ", "last_name", "party_id",
		"primary_contact", "allowed_events", "additional_guests",
	}

	cols, err := mapInviteColumns(header)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := cols.partyID, 3; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
	if have, want := cols.inviteCode, 0; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
	if have, want := cols.additionalGuests, 6; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestMapInviteColumnsMissingHeader(t *testing.T) {
	header := []interface{}{
		"party_id", "invite_code", "first_name", "last_name",
		"allowed_events", "primary_contact",
	}

	_, err := mapInviteColumns(header)
	if !errors.Is(err, repository.ErrNotConfigured) {
		t.Errorf("have %v, want %v", err, repository.ErrNotConfigured)
	}
}

func TestMapResponseColumnsMissingHeader(t *testing.T) {
	_, err := mapResponseColumns([]interface{}{"party_id", "first_name", "last_name"})
	if !errors.Is(err, repository.ErrNotConfigured) {
		t.Errorf("have %v, want %v", err, repository.ErrNotConfigured)
	}
}

func TestPartyFromRowsAggregatesSharedPartyID(t *testing.T) {
	cols, err := mapInviteColumns([]interface{}{
		"party_id", "invite_code", "first_name", "last_name",
		"additional_guests", "allowed_events", "primary_contact",
	})
	if err != nil {
		t.Fatal(err)
	}

	rows := [][]interface{}{
		{"P1", "DOE2024", "Jane", "Doe", "0", `["Ceremony","Reception"]`, "Jane Doe"},
		{"P2", "LEE2024", "Dana", "Lee", "1", `["Ceremony"]`, "Dana Lee"},
		{"P1", "DOE2024", "John", "Doe", "0", `["Ceremony","Reception"]`, "Jane Doe"},
	}

	party := partyFromRows(rows, cols, "P1")
	if party == nil {
		t.Fatal("expected a party")
	}
	if have, want := party.InviteCode, "DOE2024"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
	if have, want := len(party.GuestGroup.Guests), 2; have != want {
		t.Fatalf("have %v guests, want %v", have, want)
	}
	if have, want := party.GuestGroup.Guests[1].FullName(), "John Doe"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
	if have, want := party.GuestGroup.AllowedEvents, []string{"Ceremony", "Reception"}; !reflect.DeepEqual(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestPartyFromRowsNoMatch(t *testing.T) {
	cols := inviteColumns{partyID: 0}
	rows := [][]interface{}{{"P1"}}

	if party := partyFromRows(rows, cols, "P9"); party != nil {
		t.Errorf("have %v, want nil", party)
	}
	if party := partyFromRows(rows, cols, ""); party != nil {
		t.Errorf("have %v, want nil for an empty id", party)
	}
}

func TestPartyFromRowsToleratesShortRows(t *testing.T) {
	cols, err := mapInviteColumns([]interface{}{
		"party_id", "invite_code", "first_name", "last_name",
		"additional_guests", "allowed_events", "primary_contact",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Trailing empty cells are omitted by the sheets API.
	rows := [][]interface{}{{"P1", "DOE2024", "Jane", "Doe"}}

	party := partyFromRows(rows, cols, "P1")
	if party == nil {
		t.Fatal("expected a party")
	}
	if have, want := party.GuestGroup.AdditionalGuests, 0; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
	if party.GuestGroup.AllowedEvents != nil {
		t.Errorf("have %v, want no events", party.GuestGroup.AllowedEvents)
	}
}

func TestParseEventsCell(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{`["Ceremony","Reception"]`, []string{"Ceremony", "Reception"}},
		{"Ceremony, Reception", []string{"Ceremony", "Reception"}},
		{"Ceremony", []string{"Ceremony"}},
		{"", nil},
	}

	for _, tc := range testCases {
		if have := parseEventsCell(tc.in); !reflect.DeepEqual(have, tc.want) {
			t.Errorf("%q: have %v, want %v", tc.in, have, tc.want)
		}
	}
}

func TestIndexHeaderSkipsBlanksAndDuplicates(t *testing.T) {
	idx := indexHeader([]interface{}{"party_id", "", "party_id", "notes"})

	if have, want := idx["party_id"], 0; have != want {
		t.Errorf("have %v, want %v (first occurrence wins)", have, want)
	}
	if have, want := idx["notes"], 3; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
	if _, ok := idx[""]; ok {
		t.Error("blank headers must not be indexed")
	}
}
