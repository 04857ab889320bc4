package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

const (
	errorTitleNotFoundKey    = "web.error.title_not_found"
	errorTitleServerErrKey   = "web.error.title_server_error"
	errorMessageNotFoundKey  = "web.error.message_not_found"
	errorMessageServerErrKey = "web.error.message_server_error"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorTitleNotFoundKey)
	}
	return T(loc, errorTitleServerErrKey)
}

// ErrorPage renders the body of a localized error page.
func ErrorPage(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		heading := ErrorPageTitle(statusCode, loc)
		message := errorMessage(statusCode, loc)
		_, err := fmt.Fprintf(w,
			`<section class="error-page"><h1>%s</h1><p>%s</p></section>`,
			html.EscapeString(heading),
			html.EscapeString(message),
		)
		return err
	})
}

func errorMessage(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorMessageNotFoundKey)
	}
	return T(loc, errorMessageServerErrKey)
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
