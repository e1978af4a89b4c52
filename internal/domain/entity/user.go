package entity

import (
	"encoding/json"
	"time"
)

// User is the aggregate root for the customer domain.
//
// Password is stored and compared verbatim. Hashing it would change the
// observable behavior of the legacy data set, so the plain-text scheme is
// kept on purpose; see DESIGN.md.
//
// Address is the denormalized "last used" shipping address: an opaque JSON
// blob overwritten on every order placement and address update. It is not
// the address of any particular order.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Address   json.RawMessage
	CreatedAt time.Time
}
