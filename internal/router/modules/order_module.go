package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heshafoods/hesha-api/internal/container"
	handlers "github.com/heshafoods/hesha-api/internal/interface/http"
	"github.com/heshafoods/hesha-api/internal/interface/middleware"
)

// OrderModule wires the order routes:
// POST /api/orders, GET /api/orders/:user_id
type OrderModule struct {
	Handler *handlers.OrderHandler
}

func NewOrderModule(h *handlers.OrderHandler) *OrderModule {
	return &OrderModule{Handler: h}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	placeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP()) // 30 req/min per IP

	rg.POST("/orders", placeLimiter, m.Handler.Place)
	rg.GET("/orders/:user_id", m.Handler.ListForUser)
}
