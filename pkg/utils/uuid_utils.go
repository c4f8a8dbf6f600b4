package utils

import "github.com/google/uuid"

// GenerateUUIDv7 generates a time-ordered UUID, falling back to v4 in
// the unlikely event v7 generation fails.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
