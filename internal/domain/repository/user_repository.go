package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/heshafoods/hesha-api/internal/domain/entity"
)

var (
	// ErrDuplicateEmail is returned by Create when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create inserts the user and fills in ID and CreatedAt.
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateAddress overwrites the denormalized address blob. A userID that
	// matches no row is a silent no-op, not an error.
	UpdateAddress(ctx context.Context, userID int64, address json.RawMessage) error
}
