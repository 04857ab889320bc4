package contacts

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func stubPanel(content string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	})
}

func serve(t *testing.T, m Module, method string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	req := httptest.NewRequest(method, mount.Pattern, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func TestPageMetaIsStatic(t *testing.T) {
	t.Parallel()

	m := New(WithPanel(stubPanel("<p>panel</p>")))

	// Metadata is readable without any render call and carries the fixed
	// label only.
	meta := m.PageMeta()
	if meta.Title != "Contacts" {
		t.Fatalf("Title = %q, want %q", meta.Title, "Contacts")
	}
	if meta != Meta {
		t.Fatalf("PageMeta() = %+v, want %+v", meta, Meta)
	}
}

func TestContactsPageDelegatesToPanel(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(WithPanel(stubPanel("<p>panel output</p>"))), http.MethodGet)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<title>Contacts</title>") {
		t.Fatalf("expected document title, got %q", body)
	}
	if !strings.Contains(body, "<p>panel output</p>") {
		t.Fatalf("expected panel output in body, got %q", body)
	}
}

func TestContactsPageIsDeterministic(t *testing.T) {
	t.Parallel()

	m := New(WithPanel(stubPanel("<p>panel output</p>")))

	first := serve(t, m, http.MethodGet).Body.String()
	second := serve(t, m, http.MethodGet).Body.String()
	if first != second {
		t.Fatal("expected identical output across renders")
	}
}

func TestContactsPagePassesNothingToPanel(t *testing.T) {
	t.Parallel()

	// The panel observes only the render context and writer; the module has
	// no seam to pass anything else. Assert it is invoked exactly once per
	// request.
	calls := 0
	counting := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		calls++
		_, err := io.WriteString(w, "<p>panel</p>")
		return err
	})

	rr := serve(t, New(WithPanel(counting)), http.MethodGet)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if calls != 1 {
		t.Fatalf("panel rendered %d times, want 1", calls)
	}
}

func TestContactsPagePanelFailureSurfacesAsServerError(t *testing.T) {
	t.Parallel()

	failing := templ.ComponentFunc(func(_ context.Context, _ io.Writer) error {
		return errors.New("panel exploded")
	})

	rr := serve(t, New(WithPanel(failing)), http.MethodGet)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "panel exploded") {
		t.Fatalf("panel error text must not leak to the client: %q", rr.Body.String())
	}
}

func TestContactsPageWithoutPanelIsUnhealthy(t *testing.T) {
	t.Parallel()

	m := New()
	if m.Healthy() {
		t.Fatal("expected module without panel to report unhealthy")
	}

	rr := serve(t, m, http.MethodGet)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestContactsPageRejectsNonGet(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(WithPanel(stubPanel("<p>panel</p>"))), http.MethodPost)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodGet {
		t.Fatalf("Allow = %q, want %q", got, http.MethodGet)
	}
}
