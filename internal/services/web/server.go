// Package web hosts the browser-facing HTTP server: routed pages, the JSON
// API, and static assets.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/roivolution/roivolution/internal/platform/timeouts"
	"github.com/roivolution/roivolution/internal/services/web/i18n"
	"github.com/roivolution/roivolution/internal/services/web/modules"
	"github.com/roivolution/roivolution/internal/services/web/panel"
	"github.com/roivolution/roivolution/internal/services/web/platform/pagerender"
	"github.com/roivolution/roivolution/internal/services/web/routepath"
)

// Dependencies carries the externally-owned capabilities the server mounts.
type Dependencies = modules.Dependencies

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler assembles the full route handler for the web service.
//
// The configuration panel is constructed here and injected into the contacts
// module as an opaque renderable; the page itself never sees panel
// internals.
func NewHandler(deps Dependencies) (http.Handler, error) {
	mux := http.NewServeMux()

	staticFS, err := subStaticFS()
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS))))

	if deps.Panel == nil {
		deps.Panel = panel.New(i18n.Printer(i18n.Default()))
	}

	mods := modules.Compose(deps)
	if err := modules.MountAll(mux, mods); err != nil {
		return nil, err
	}
	for id, healthy := range modules.Health(mods) {
		if !healthy {
			log.Printf("module %s starting degraded", id)
		}
	}

	mux.HandleFunc(routepath.Home, handleHome)

	return mux, nil
}

// handleHome redirects the root to the contacts page and renders the shared
// not-found page for unknown paths.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if strings.TrimRight(r.URL.Path, "/") == "" {
		http.Redirect(w, r, routepath.Contacts, http.StatusFound)
		return
	}
	pagerender.WriteErrorPage(w, r, http.StatusNotFound)
}

// NewServer creates the web server around a fully-assembled handler.
func NewServer(httpAddr string, deps Dependencies) (*Server, error) {
	if strings.TrimSpace(httpAddr) == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(deps)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
