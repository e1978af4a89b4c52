package repository

import (
	"context"

	"github.com/heshafoods/hesha-api/internal/domain/entity"
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create inserts the immutable order record as a single statement.
	Create(ctx context.Context, o *entity.Order) error
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID int64) ([]entity.Order, error)
}
