package graphql

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// Error is a failure reported by the GraphQL server: a non-2xx status, an errors array, or both.
type Error struct {
	StatusCode int
	Messages   []string
}

type errorItem struct {
	Message string `json:"message"`
}

func newError(status int, items []errorItem) *Error {
	e := &Error{StatusCode: status}
	for _, item := range items {
		if item.Message != "" {
			e.Messages = append(e.Messages, item.Message)
		}
	}
	return e
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, ", ")
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return "graphql request failed"
}

// NotFound reports whether the server said the requested object does not exist.
func (e *Error) NotFound() bool {
	if e.StatusCode == http.StatusNotFound {
		return true
	}
	for _, m := range e.Messages {
		if strings.Contains(strings.ToLower(m), "not found") {
			return true
		}
	}
	return false
}

// Retryable is true for transport failures and for statuses that signal a transient server condition.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var gqlErr *Error
	if !errors.As(err, &gqlErr) {
		return true
	}

	switch gqlErr.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// Code labels err for metrics.
func Code(err error) string {
	if err == nil {
		return "OK"
	}
	var gqlErr *Error
	if errors.As(err, &gqlErr) {
		if gqlErr.StatusCode >= 200 && gqlErr.StatusCode < 300 {
			return "GRAPHQL_ERROR"
		}
		return strconv.Itoa(gqlErr.StatusCode)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "TIMEOUT"
	}
	return "TRANSPORT"
}
