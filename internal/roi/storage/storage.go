// Package storage defines the persistence contract for ROI projections.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured reports a storage operation against an absent backend.
var ErrNotConfigured = errors.New("roi storage is not configured")

// Entry is one persisted ROI projection.
type Entry struct {
	ID              string
	ProjectBudget   float64
	NetBenefit      float64
	ROI             float64
	ExpectedSuccess float64
	IndustryType    string
	ProjectDuration float64
	CreatedAt       time.Time
}

// Store persists ROI projection entries.
type Store interface {
	// CreateEntry appends one projection entry.
	CreateEntry(ctx context.Context, entry Entry) error
	// ListEntries returns all entries ordered by creation time ascending.
	ListEntries(ctx context.Context) ([]Entry, error)
}
