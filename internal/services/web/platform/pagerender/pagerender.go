// Package pagerender centralizes page rendering behavior for routed modules.
package pagerender

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/roivolution/roivolution/internal/platform/branding"
	"github.com/roivolution/roivolution/internal/services/web/i18n"
	"github.com/roivolution/roivolution/internal/services/web/module"
	"github.com/roivolution/roivolution/internal/services/web/templates"
)

// ErrNoFragment reports a page whose body component was never wired.
var ErrNoFragment = errors.New("page fragment is not wired")

// Page describes a routed page response.
type Page struct {
	// Meta is the static document metadata declared by the page.
	Meta module.PageMeta
	// StatusCode defaults to 200 when unset.
	StatusCode int
	// Fragment is the page body, rendered unmodified inside the document
	// shell.
	Fragment templ.Component
}

// WritePage renders a page through the shared document layout.
//
// The fragment renders into a buffer before any bytes reach the client, so a
// failure raised inside it returns to the caller unmodified with the
// response untouched.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	if page.Fragment == nil {
		return ErrNoFragment
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	_, lang := i18n.Localize(w, r)
	layout := templates.Document(templates.LayoutOptions{
		Title:   page.Meta.Title,
		Lang:    lang,
		AppName: branding.AppName,
	}, page.Fragment)

	var buf bytes.Buffer
	if err := layout.Render(r.Context(), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteErrorPage renders the shared localized error page for status.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, status int) {
	if w == nil {
		return
	}
	loc, lang := i18n.Localize(w, r)
	layout := templates.Document(templates.LayoutOptions{
		Title:   templates.ErrorPageTitle(status, loc),
		Lang:    lang,
		AppName: branding.AppName,
	}, templates.ErrorPage(status, loc))

	var buf bytes.Buffer
	if err := layout.Render(r.Context(), &buf); err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
