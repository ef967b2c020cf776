package forks

import (
	"errors"
	"strings"
)

// Severity of an alert banner.
type Severity string

const (
	SeverityInfo   Severity = "info"
	SeverityDanger Severity = "danger"
)

const (
	// RateLimitMessage replaces the error text when GitHub refused the request.
	RateLimitMessage = "Error: API Rate Limit Exceeded"

	// DiagnosticsSuffix points the user at the log for details.
	DiagnosticsSuffix = ". Additional info in console"

	forbiddenText = "Forbidden"
	forbidden     = 403
)

// Alert is a dismissible notice shown in place of the results.
type Alert struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// apiStatus is implemented by API errors that carry an HTTP status.
type apiStatus interface {
	StatusCode() int
	Status() string
}

// IsRateLimited reports whether GitHub refused the request: the response
// was a 403 or its status text mentions Forbidden. Errors without a status
// are checked by their innermost cause only, so wrapping context such as
// a repository name never matches.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}

	var st apiStatus
	if errors.As(err, &st) {
		return st.StatusCode() == forbidden || strings.Contains(st.Status(), forbiddenText)
	}

	return strings.Contains(rootCause(err).Error(), forbiddenText)
}

// AlertMessage converts a fetch failure into the text shown to the user.
// API errors show their HTTP status text; the full error belongs in the log.
func AlertMessage(err error) string {
	if IsRateLimited(err) {
		return RateLimitMessage + DiagnosticsSuffix
	}

	var st apiStatus
	if errors.As(err, &st) {
		return "Error: " + st.Status() + DiagnosticsSuffix
	}

	return "Error: " + err.Error() + DiagnosticsSuffix
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}

		err = next
	}
}

// FetchAlert is the danger alert for a failed fetch.
func FetchAlert(err error) Alert {
	return Alert{Severity: SeverityDanger, Message: AlertMessage(err)}
}
