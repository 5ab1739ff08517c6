// Package utils holds small shared helpers with no domain logic.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces canonical 36-character node identifiers. UUIDs are
// version 7 so identifiers created in sequence sort in creation order; if
// the monotonic source fails it falls back to a random v4.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
