package entity

import "time"

// OrderStatusDelivered is the status every order is created with. The
// system has no status machine: orders are recorded as already fulfilled
// and never transition.
const OrderStatusDelivered = "Delivered"

// Address is the shipping address snapshot embedded in an order. The copy
// stored on the order is independent of the user's denormalized address.
type Address struct {
	FullName string `json:"fullname"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
	Phone    string `json:"phone"`
}

// OrderItem is a single purchased line.
type OrderItem struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Img      string  `json:"img"`
	Quantity int     `json:"quantity"`
}

// Order is immutable once created; there is no update or cancel path.
// UserID is nil for guest checkout.
type Order struct {
	ID        string
	UserID    *int64
	Total     float64
	Status    string
	Items     []OrderItem
	Address   Address
	CreatedAt time.Time
}
