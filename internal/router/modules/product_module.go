package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/heshafoods/hesha-api/internal/interface/http"
)

// ProductModule wires the catalog route: GET /api/products
type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Handler.List)
}
