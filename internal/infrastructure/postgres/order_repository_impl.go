package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heshafoods/hesha-api/internal/domain/entity"
	"github.com/heshafoods/hesha-api/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	address, err := json.Marshal(o.Address)
	if err != nil {
		return fmt.Errorf("marshal address: %w", err)
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `
		INSERT INTO orders (id, user_id, total, status, items, address)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, o.ID, o.UserID, o.Total, o.Status, string(items), string(address))
	return err
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Order, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, total::float8, status, items, address, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var (
			o       entity.Order
			items   []byte
			address []byte
		)
		if err := rows.Scan(&o.ID, &o.Total, &o.Status, &items, &address, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items for order %s: %w", o.ID, err)
		}
		if err := json.Unmarshal(address, &o.Address); err != nil {
			return nil, fmt.Errorf("unmarshal address for order %s: %w", o.ID, err)
		}
		uid := userID
		o.UserID = &uid
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
