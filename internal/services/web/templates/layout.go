// Package templates holds the shared templ components for the web service.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/roivolution/roivolution/internal/services/web/routepath"
)

// LayoutOptions carries the document-level attributes for a rendered page.
type LayoutOptions struct {
	// Title is the page title; when empty the document falls back to AppName.
	Title   string
	Lang    string
	AppName string
}

// Document renders the HTML shell around a body component. The body renders
// unmodified; a failure raised by it propagates to the caller as-is.
func Document(opts LayoutOptions, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := opts.Title
		if title == "" {
			title = opts.AppName
		}
		lang := opts.Lang
		if lang == "" {
			lang = "en-US"
		}

		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s</title>`+
				`<link rel="stylesheet" href="%sstyles.css">`+
				`</head><body><header class="site-header"><a class="brand" href="%s">%s</a></header><main>`,
			html.EscapeString(lang),
			html.EscapeString(title),
			routepath.StaticPrefix,
			routepath.Home,
			html.EscapeString(opts.AppName),
		); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
