package repository

import (
	"context"
	"errors"
	"net"
	"strings"
)

// Common repository errors
var (
	ErrNotFound    = errors.New("record not found")
	ErrUnavailable = errors.New("database unavailable")
)

// isUnavailableError checks if the error indicates the database is
// unreachable or timed out, as opposed to a query-level failure.
func isUnavailableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "database is closed") ||
		strings.Contains(errStr, "bad connection")
}
