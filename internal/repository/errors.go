package repository

import "errors"

// ErrNotConfigured indicates the backing store is missing required
// configuration (credentials, spreadsheet headers, schema) and no store
// call was attempted.
var ErrNotConfigured = errors.New("store not configured")
