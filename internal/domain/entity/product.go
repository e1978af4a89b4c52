package entity

// Product is a catalog entry. The catalog is currently a fixed in-memory
// list; the products table exists in the schema but nothing writes to it.
type Product struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Img      string  `json:"img"`
	Category string  `json:"category"`
}
