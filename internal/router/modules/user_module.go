package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heshafoods/hesha-api/internal/container"
	handlers "github.com/heshafoods/hesha-api/internal/interface/http"
	"github.com/heshafoods/hesha-api/internal/interface/middleware"
)

// UserModule wires the account routes:
// POST /api/signup, POST /api/login, POST /api/user/address
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath()) // 10 req/min per IP
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())  // 10 req/min per IP

	rg.POST("/signup", signupLimiter, m.Handler.SignUp)
	rg.POST("/login", loginLimiter, m.Handler.LogIn)
	rg.POST("/user/address", m.Handler.UpdateAddresses)
}
