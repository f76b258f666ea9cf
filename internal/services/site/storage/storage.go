// Package storage declares persistence interfaces for visitor-owned site data.
//
// The gallery itself is rebuilt from the content document on every start, so
// the only durable datum is each visitor's theme preference.
package storage

import (
	"context"
	"time"
)

// Preference stores one visitor's presentation choices.
type Preference struct {
	VisitorID string
	Theme     string
	UpdatedAt time.Time
}

// Store is the contract for site persistence.
type Store interface {
	Close() error
	GetPreference(ctx context.Context, visitorID string) (Preference, bool, error)
	PutPreference(ctx context.Context, pref Preference) error
}
