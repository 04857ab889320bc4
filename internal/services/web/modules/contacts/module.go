// Package contacts hosts the contacts page: a routed page that declares its
// document metadata and delegates its entire body to the configuration panel.
package contacts

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/roivolution/roivolution/internal/services/web/module"
	"github.com/roivolution/roivolution/internal/services/web/platform/pagerender"
	"github.com/roivolution/roivolution/internal/services/web/routepath"
)

// Meta is the static document metadata for the contacts page. It is fixed at
// definition time and readable without invoking any render logic.
var Meta = module.PageMeta{Title: "Contacts"}

// Option configures a contacts module.
type Option func(*Module)

// WithPanel injects the configuration panel the page delegates to.
func WithPanel(panel templ.Component) Option {
	return func(m *Module) { m.panel = panel }
}

// Module provides the contacts page route.
type Module struct {
	panel templ.Component
}

// New returns a contacts module configured by the given options.
// Without a panel the module still mounts and reports unhealthy; rendering
// then fails through the normal error channel.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contacts" }

// PageMeta returns the static document metadata for the contacts page.
func (Module) PageMeta() module.PageMeta { return Meta }

// Healthy reports whether the page has a panel wired.
func (m Module) Healthy() bool { return m.panel != nil }

// Mount wires the contacts page handler.
func (m Module) Mount() (module.Mount, error) {
	return module.Mount{
		Pattern: routepath.Contacts,
		Handler: http.HandlerFunc(m.handleContacts),
	}, nil
}

// handleContacts serves the contacts page. The page body is exactly the
// panel component, handed to the renderer unmodified and with no arguments;
// any failure the panel raises surfaces through the server error page
// rather than being caught here.
func (m Module) handleContacts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	err := pagerender.WritePage(w, r, pagerender.Page{
		Meta:     Meta,
		Fragment: m.panel,
	})
	if err != nil {
		pagerender.WriteErrorPage(w, r, http.StatusInternalServerError)
	}
}
