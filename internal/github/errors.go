package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v82/github"
)

// StatusError is a non-2xx API response. Its text is the HTTP status text,
// e.g. "Forbidden" or "Not Found".
type StatusError struct {
	Code    int
	Text    string
	Message string // message body returned by GitHub, if any
}

func (e *StatusError) Error() string {
	return e.Text
}

// StatusCode returns the HTTP status of the response.
func (e *StatusError) StatusCode() int {
	return e.Code
}

// Status returns the HTTP status text shown to the user.
func (e *StatusError) Status() string {
	return e.Text
}

// apiError maps go-github response errors to *StatusError and leaves
// transport errors untouched.
func apiError(err error) error {
	var (
		rateErr  *gh.RateLimitError
		abuseErr *gh.AbuseRateLimitError
		respErr  *gh.ErrorResponse
	)

	switch {
	case errors.As(err, &rateErr):
		return statusError(rateErr.Response, http.StatusForbidden, rateErr.Message)
	case errors.As(err, &abuseErr):
		return statusError(abuseErr.Response, http.StatusForbidden, abuseErr.Message)
	case errors.As(err, &respErr):
		return statusError(respErr.Response, 0, respErr.Message)
	}

	return err
}

func statusError(resp *http.Response, fallback int, message string) *StatusError {
	code := fallback
	if resp != nil {
		code = resp.StatusCode
	}

	text := http.StatusText(code)
	if text == "" {
		text = fmt.Sprintf("HTTP %d", code)
	}

	return &StatusError{Code: code, Text: text, Message: message}
}
