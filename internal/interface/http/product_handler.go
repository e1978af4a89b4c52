package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heshafoods/hesha-api/internal/application"
	"github.com/heshafoods/hesha-api/pkg/response"
)

type ProductHandler struct {
	Catalog *application.Catalog
}

func NewProductHandler(catalog *application.Catalog) *ProductHandler {
	return &ProductHandler{Catalog: catalog}
}

func (h *ProductHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Catalog.Products(), "products")
}
