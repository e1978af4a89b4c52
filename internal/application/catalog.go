package application

import "github.com/heshafoods/hesha-api/internal/domain/entity"

// Catalog serves the fixed product list. The products table exists in the
// schema but has no write path yet; until it does, the catalog lives here.
type Catalog struct {
	products []entity.Product
}

func NewCatalog() *Catalog {
	return &Catalog{
		products: []entity.Product{
			{ID: 1, Title: "Idli & Dosa Batter", Price: 120.00, Img: "JPG/Front.jpeg", Category: "Batter"},
			{ID: 2, Title: "Crispy Golden Dosa", Price: 150.00, Img: "dosa.png", Category: "Breakfast"},
			{ID: 3, Title: "Lacy Appam", Price: 80.00, Img: "rava_idli.png", Category: "Specialties"},
		},
	}
}

// Products returns a copy so callers cannot mutate the catalog.
func (c *Catalog) Products() []entity.Product {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out
}
