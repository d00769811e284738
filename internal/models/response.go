package models

import "time"

// GuestResponse is the answer recorded for one guest: whether they are
// attending and any dietary note they left.
type GuestResponse struct {
	Guest
	Attending           bool   `json:"attending"`
	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`
}

// RsvpResponse is the complete submission for a party. SubmittedAt is
// assigned by the server at write time and never trusted from the client.
type RsvpResponse struct {
	Guests      []GuestResponse `json:"guests"`
	SongRequest string          `json:"songRequest,omitempty"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

// AttendingCount returns how many guests in the response said yes.
func (r *RsvpResponse) AttendingCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, g := range r.Guests {
		if g.Attending {
			n++
		}
	}
	return n
}
