package models

import (
	"github.com/google/uuid"
)

// NewID returns a fresh unique identifier for a newly created entity.
func NewID() string {
	return uuid.NewString()
}
