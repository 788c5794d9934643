package check

import "github.com/google/uuid"

// NilUUID reports whether id is the all-zero UUID.
func NilUUID(id uuid.UUID) bool {
	return id == uuid.Nil
}

// NotNilUUID reports whether id differs from the all-zero UUID.
func NotNilUUID(id uuid.UUID) bool {
	return id != uuid.Nil
}
