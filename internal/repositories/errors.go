package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound indicates the requested record does not exist in the store.
// Services translate it into their own error taxonomy.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate indicates an insert collided with a unique constraint,
// e.g. a concurrent signup racing on the email index.
var ErrDuplicate = errors.New("record already exists")

// isDuplicateKey reports whether err is a unique-constraint violation.
// SQLite reports "UNIQUE constraint failed", PostgreSQL "duplicate key
// value violates unique constraint".
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}
