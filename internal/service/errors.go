package service

import "errors"

var (
	// ErrNotFound means the identity did not resolve to a seeded party.
	ErrNotFound = errors.New("party not found")

	// ErrValidation means the identity or submission was malformed.
	// Wrapped errors carry the individual field failures.
	ErrValidation = errors.New("invalid rsvp submission")

	// ErrStore means a read or write against the backing table failed.
	ErrStore = errors.New("store access failed")
)
