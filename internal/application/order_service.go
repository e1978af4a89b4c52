package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/heshafoods/hesha-api/internal/domain/entity"
	repo "github.com/heshafoods/hesha-api/internal/domain/repository"
	"github.com/heshafoods/hesha-api/pkg/mailer"
)

const orderIDPrefix = "ORD"

// OrderNotifier delivers an order summary as a pure side effect; failures
// stay inside the notifier and never reach the workflow.
type OrderNotifier interface {
	SendOrderNotification(ctx context.Context, n mailer.OrderNotification)
}

// OrderService runs the order-placement workflow: persist the order,
// denormalize the shipping address onto the owning user, notify the
// operator mailbox. Only the persist step can fail the workflow.
type OrderService struct {
	Orders   repo.OrderRepository
	Users    repo.UserRepository
	Notifier OrderNotifier
	Logger   *logrus.Logger
}

func NewOrderService(orders repo.OrderRepository, users repo.UserRepository, notifier OrderNotifier, logger *logrus.Logger) *OrderService {
	return &OrderService{Orders: orders, Users: users, Notifier: notifier, Logger: logger}
}

// PlaceOrderInput is the already-validated order payload.
type PlaceOrderInput struct {
	UserID  *int64
	Items   []entity.OrderItem
	Total   float64
	Address entity.Address
}

// PlaceOrder returns the generated order id. Ids are derived from the wall
// clock at second resolution, so two orders accepted within the same second
// collide on the primary key; the format is kept from the legacy system.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (string, error) {
	id := orderIDPrefix + time.Now().Format("20060102150405")

	order := &entity.Order{
		ID:      id,
		UserID:  in.UserID,
		Total:   in.Total,
		Status:  entity.OrderStatusDelivered,
		Items:   in.Items,
		Address: in.Address,
	}
	if err := s.Orders.Create(ctx, order); err != nil {
		return "", err
	}

	// The address denormalization and the notification are both advisory:
	// once the order row is durable the workflow cannot fail anymore.
	if in.UserID != nil {
		if addr, err := json.Marshal(in.Address); err == nil {
			if err := s.Users.UpdateAddress(ctx, *in.UserID, addr); err != nil {
				s.Logger.WithError(err).WithFields(logrus.Fields{
					"order_id": id,
					"user_id":  *in.UserID,
				}).Warn("failed to denormalize address onto user")
			}
		}
	}

	if s.Notifier != nil {
		s.Notifier.SendOrderNotification(ctx, notification(id, in))
	}

	s.Logger.WithFields(logrus.Fields{"order_id": id, "total": in.Total}).Info("order placed")
	return id, nil
}

// ListForUser returns the user's orders newest first; a user with no orders
// gets an empty slice.
func (s *OrderService) ListForUser(ctx context.Context, userID int64) ([]entity.Order, error) {
	return s.Orders.ListByUser(ctx, userID)
}

func notification(orderID string, in PlaceOrderInput) mailer.OrderNotification {
	lines := make([]mailer.OrderLine, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, mailer.OrderLine{Title: it.Title, Price: it.Price, Quantity: it.Quantity})
	}
	return mailer.OrderNotification{
		OrderID:      orderID,
		Total:        in.Total,
		Items:        lines,
		CustomerName: in.Address.FullName,
		Phone:        in.Address.Phone,
		Street:       in.Address.Street,
		City:         in.Address.City,
		Zip:          in.Address.Zip,
	}
}
