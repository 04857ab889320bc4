// Package module defines the page contract used by web composition.
package module

import "net/http"

// PageMeta is the static document metadata attached to a routed page.
// A PageMeta value is constructed once at composition time, never mutated,
// and readable by the host without invoking any render logic.
type PageMeta struct {
	// Title is the human-readable label for the page.
	Title string
}

// Mount describes a module route mount.
type Mount struct {
	Pattern string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// PageMetaProvider is an optional interface for modules that expose static
// document metadata. Hosts read it when assembling the document shell,
// independently of rendering.
type PageMetaProvider interface {
	PageMeta() PageMeta
}

// HealthReporter is an optional interface for modules that can report their
// operational availability. Modules with injected dependencies implement
// this so the registry can derive service health without centralizing
// dependency knowledge.
type HealthReporter interface {
	Healthy() bool
}
