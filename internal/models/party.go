package models

// Guest is a single invited person, either pre-listed on the invitation
// or added as a +1 during an RSVP session.
type Guest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName returns "First Last" for display and for flattened store rows.
func (g Guest) FullName() string {
	if g.FirstName == "" {
		return g.LastName
	}
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}

// GuestGroup describes who is covered by an invitation and which events
// they are invited to.
type GuestGroup struct {
	Guests           []Guest  `json:"guests"`
	AdditionalGuests int      `json:"additionalGuests"`
	AllowedEvents    []string `json:"allowedEvents"`
	PrimaryContact   string   `json:"primaryContact,omitempty"`
}

// Party is the unit of invitation: the group of guests reached through a
// single invite code. Parties are seeded into the backing store before
// the site goes live; the RSVP flow only ever reads them.
type Party struct {
	ID         string     `json:"partyId"`
	InviteCode string     `json:"inviteCode,omitempty"`
	GuestGroup GuestGroup `json:"guestGroup"`
}

// MaxGuests is the largest number of guests a submission for this party
// may contain: everyone pre-listed plus the configured +1 allowance.
func (p *Party) MaxGuests() int {
	return len(p.GuestGroup.Guests) + p.GuestGroup.AdditionalGuests
}

// PartyRecord is the wire shape for a party together with its recorded
// response, if one has been submitted.
type PartyRecord struct {
	Party
	Response *RsvpResponse `json:"response,omitempty"`
}
