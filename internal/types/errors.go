package types

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the closed set of failure categories surfaced by the backend client.
type ErrorKind string

const (
	KindNetwork      ErrorKind = "network"
	KindUnauthorized ErrorKind = "unauthorized"
	KindNotFound     ErrorKind = "not_found"
	KindServer       ErrorKind = "server"
	KindDecoding     ErrorKind = "decoding"
	KindUnknown      ErrorKind = "unknown"
)

// DefaultErrorMessage is shown when a failure carries no message of its own.
const DefaultErrorMessage = "Something went wrong. Please try again."

var kindMessages = map[ErrorKind]string{
	KindNetwork:      "Unable to reach the server. Check your connection and try again.",
	KindUnauthorized: "Please sign in to continue.",
	KindNotFound:     "The requested content could not be found.",
	KindServer:       "The server had a problem. Please try again later.",
	KindDecoding:     "Received an unexpected response from the server.",
	KindUnknown:      DefaultErrorMessage,
}

// Sentinels for errors.Is checks against an APIError kind.
var (
	ErrNetwork      = &APIError{Kind: KindNetwork}
	ErrUnauthorized = &APIError{Kind: KindUnauthorized}
	ErrNotFound     = &APIError{Kind: KindNotFound}
	ErrServer       = &APIError{Kind: KindServer}
	ErrDecoding     = &APIError{Kind: KindDecoding}
	ErrUnknown      = &APIError{Kind: KindUnknown}
)

// APIError is a failed backend call.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Status != 0 && msg != "":
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.Status, msg)
	case e.Status != 0:
		return fmt.Sprintf("%s error (status %d)", e.Kind, e.Status)
	case msg != "":
		return fmt.Sprintf("%s error: %s", e.Kind, msg)
	default:
		return fmt.Sprintf("%s error", e.Kind)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// Is reports whether target is an APIError of the same kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Kind == e.Kind
}

// DisplayMessage is the human-readable text for this error.
func (e *APIError) DisplayMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return kindMessages[e.Kind]
}

// KindFromStatus maps a non-2xx HTTP status onto an ErrorKind.
func KindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// KindOf returns the kind of err, or KindUnknown when err is not an APIError.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// UserMessage returns the text a view should display for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.DisplayMessage()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return DefaultErrorMessage
}
