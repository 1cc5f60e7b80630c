package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies summary failures.
type ErrorKind string

const (
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindRateLimited        ErrorKind = "rate_limited"
	KindUnauthorized       ErrorKind = "unauthorized"
	KindServerError        ErrorKind = "server_error"
	KindClientError        ErrorKind = "client_error"
	KindTransport          ErrorKind = "transport_error"
)

// ErrEntryNotFound is returned by entry storage when a key has never been written.
var ErrEntryNotFound = errors.New("entry not found")

// SummaryError is the only error type the summary client surfaces. Views
// render Title, Message and Suggestion and never look at raw status codes.
type SummaryError struct {
	Kind       ErrorKind
	Status     int
	Title      string
	Message    string
	Suggestion string
	Err        error
}

func (e *SummaryError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Title, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func (e *SummaryError) Unwrap() error {
	return e.Err
}

// OffersFallback reports whether the remote service itself is the problem,
// in which case views offer the fallback summary and a link to the original.
func (e *SummaryError) OffersFallback() bool {
	switch e.Kind {
	case KindServiceUnavailable, KindServerError, KindTransport:
		return true
	default:
		return false
	}
}

// StatusError maps a non-2xx HTTP status onto the taxonomy.
func StatusError(status int) *SummaryError {
	switch {
	case status == http.StatusServiceUnavailable:
		return &SummaryError{
			Kind:       KindServiceUnavailable,
			Status:     status,
			Title:      "Service Temporarily Unavailable",
			Message:    "The summarization service is currently down. Please try again later.",
			Suggestion: "You can visit the original article or try the fallback summary option.",
		}
	case status == http.StatusTooManyRequests:
		return &SummaryError{
			Kind:       KindRateLimited,
			Status:     status,
			Title:      "Rate Limited",
			Message:    "Too many requests. Please wait before trying again.",
			Suggestion: "Wait a few minutes before making another request.",
		}
	case status == http.StatusUnauthorized:
		return &SummaryError{
			Kind:       KindUnauthorized,
			Status:     status,
			Title:      "Authentication Error",
			Message:    "Invalid API key or unauthorized access.",
			Suggestion: "Check your API key configuration.",
		}
	case status >= 500:
		return ServerError(status, "The server encountered an error while processing your request.", nil)
	default:
		return &SummaryError{
			Kind:       KindClientError,
			Status:     status,
			Title:      "Client Error",
			Message:    "There was an issue with your request.",
			Suggestion: "Please check the URL and try again.",
		}
	}
}

// ServerError builds a ServerError-kind failure with a custom message.
func ServerError(status int, message string, cause error) *SummaryError {
	return &SummaryError{
		Kind:       KindServerError,
		Status:     status,
		Title:      "Server Error",
		Message:    message,
		Suggestion: "Please try again later or contact support if the issue persists.",
		Err:        cause,
	}
}

// TransportError wraps a network-level failure.
func TransportError(cause error) *SummaryError {
	return &SummaryError{
		Kind:       KindTransport,
		Title:      "Connection Error",
		Message:    "The summarization service could not be reached.",
		Suggestion: "Check your internet connection and that the URL is reachable.",
		Err:        cause,
	}
}

// MissingCredentials is reported when no API key is configured at all.
func MissingCredentials(envVar string) *SummaryError {
	return &SummaryError{
		Kind:       KindUnauthorized,
		Title:      "Authentication Error",
		Message:    fmt.Sprintf("No API key configured (%s is empty).", envVar),
		Suggestion: "Check your API key configuration.",
	}
}

// AsSummaryError converts any error into a SummaryError, treating unknown
// errors as transport failures.
func AsSummaryError(err error) *SummaryError {
	if err == nil {
		return nil
	}
	var summaryErr *SummaryError
	if errors.As(err, &summaryErr) {
		return summaryErr
	}
	return TransportError(err)
}

// TroubleshootingTips are shown alongside any failure.
var TroubleshootingTips = []string{
	"The API service may be down temporarily",
	"Try again in a few minutes",
	"Check if the URL is accessible",
	"Ensure you have a stable internet connection",
}
