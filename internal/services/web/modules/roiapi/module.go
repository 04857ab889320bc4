// Package roiapi exposes the JSON API for ROI projections: calculation,
// stored-entry retrieval, and anomaly detection.
package roiapi

import (
	"context"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/roivolution/roivolution/internal/roi/storage"
	"github.com/roivolution/roivolution/internal/services/web/module"
	"github.com/roivolution/roivolution/internal/services/web/routepath"
)

// EntryStore is the narrow storage contract the API module consumes.
type EntryStore interface {
	CreateEntry(ctx context.Context, entry storage.Entry) error
	ListEntries(ctx context.Context) ([]storage.Entry, error)
}

// Detector is the anomaly detection contract the API module consumes.
type Detector interface {
	Configured() bool
	Detect(ctx context.Context, entries []storage.Entry) ([]storage.Entry, error)
}

// Option configures an API module.
type Option func(*Module)

// WithStore sets the entry store.
func WithStore(store EntryStore) Option {
	return func(m *Module) { m.store = store }
}

// WithDetector sets the anomaly detector.
func WithDetector(detector Detector) Option {
	return func(m *Module) { m.detector = detector }
}

// Module provides the ROI JSON API routes.
type Module struct {
	store    EntryStore
	detector Detector
	// detectGroup collapses concurrent anomaly requests into one call to
	// the rate-limited external API.
	detectGroup *singleflight.Group
}

// New returns an API module configured by the given options.
// Without a store the module starts in degraded mode.
func New(opts ...Option) Module {
	m := Module{detectGroup: &singleflight.Group{}}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "roiapi" }

// Healthy reports whether the API module has an operational store.
func (m Module) Healthy() bool { return m.store != nil }

// Mount wires the API route handlers behind the CORS policy.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(routepath.APICalculateROI, m.handleCalculate)
	mux.HandleFunc(routepath.APIListROI, m.handleList)
	mux.HandleFunc(routepath.APIDetectAnomalies, m.handleAnomalies)
	return module.Mount{
		Pattern: routepath.APIPrefix,
		Handler: withCORS(mux),
	}, nil
}
