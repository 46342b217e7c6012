package identity

import (
	"github.com/google/uuid"

	"github.com/assetbook/backend/internal/domain"
)

// Generator implements domain.IDGenerator using random (v4) UUIDs, which are
// collision resistant across concurrent callers without coordination.
type Generator struct{}

// NewGenerator creates a new UUID-backed identifier generator.
func NewGenerator() domain.IDGenerator {
	return Generator{}
}

// NewID returns a new opaque 36-character identifier.
func (Generator) NewID() string {
	return uuid.NewString()
}
