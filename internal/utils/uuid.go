package utils

import "github.com/google/uuid"

// UUIDGenerator mints opaque string identifiers for new records.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string. Version 7 keeps ids roughly
// time-ordered, which keeps btree indexes on id columns compact.
// Falls back to a random v4 if v7 generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
