package router

import (
	"github.com/heshafoods/hesha-api/internal/application"
	"github.com/heshafoods/hesha-api/internal/container"
	pginfra "github.com/heshafoods/hesha-api/internal/infrastructure/postgres"
	handlers "github.com/heshafoods/hesha-api/internal/interface/http"
	"github.com/heshafoods/hesha-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	orderRepo := pginfra.NewOrderRepository(pool)

	userSvc := application.NewUserService(userRepo, logger)
	orderSvc := application.NewOrderService(orderRepo, userRepo, container.GetMailer(), logger)
	catalog := application.NewCatalog()

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(orderSvc, logger)))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(catalog)))
}
