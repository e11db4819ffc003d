package utils

import (
	"github.com/google/uuid"
)

// NewRequestID returns a unique identifier string used to correlate the log
// entries of a single HTTP request.
func NewRequestID() string {
	return uuid.New().String()
}
