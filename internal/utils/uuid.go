package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for IPC requests and vault
// sources.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7 string. When the v7 source fails a random v4 is
// returned instead, so the result is always a valid UUID.
func (g *UUIDGenerator) Generate() string {
	if id, err := g.newV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
