package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pawnshop-gateway/internal/api/http/handlers"
	"github.com/spec-kit/pawnshop-gateway/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	AdminAuth     *handlers.AdminAuthHandler
	Dashboard     *handlers.DashboardHandler
	Pawn          *handlers.PawnHandler
	Loans         *handlers.LoansHandler
	Shop          *handlers.ShopHandler
	Admin         *handlers.AdminHandler
	Notifications *handlers.NotificationsHandler
	Client        *auth.ClientMiddleware
	Guard         *auth.Guard
}

// RegisterRoutes wires HTTP routes. Every route passes through the client
// middleware; the guard middleware gates everything but health probes and
// the notification poll endpoints.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Use(cfg.Client.Handle)

	app.Get("/api/notifications", cfg.Notifications.List)
	app.Delete("/api/notifications/:id", cfg.Notifications.Dismiss)

	guarded := app.Group("", cfg.Guard.Middleware())

	// Unauthenticated-only pages double as credential exchange endpoints.
	guarded.Post("/api/auth/login", cfg.Auth.Login)
	guarded.Post("/api/auth/register", cfg.Auth.Register)
	guarded.Post("/api/auth/logout", cfg.Auth.Logout)
	guarded.Post("/api/admin/login", cfg.AdminAuth.Login)
	guarded.Post("/api/admin/logout", cfg.AdminAuth.Logout)

	guarded.Get("/dashboard", cfg.Dashboard.Dashboard)
	guarded.Get("/profile", cfg.Dashboard.Profile)

	guarded.Post("/pawn", cfg.Pawn.Submit)
	guarded.Get("/pawn", cfg.Pawn.List)
	guarded.Get("/pawn/:id", cfg.Pawn.Get)
	guarded.Post("/pawn/:id/cancel", cfg.Pawn.Cancel)

	guarded.Get("/loans", cfg.Loans.List)
	guarded.Get("/loans/:id", cfg.Loans.Get)
	guarded.Post("/loans/:id/redeem", cfg.Loans.Redeem)
	guarded.Post("/loans/:id/renew", cfg.Loans.Renew)

	guarded.Get("/shop", cfg.Shop.List)
	guarded.Get("/shop/:id", cfg.Shop.Get)

	guarded.Get("/admin/dashboard", cfg.Admin.Dashboard)
	guarded.Get("/admin/users", cfg.Admin.ListUsers)
	guarded.Post("/admin/users/:id/suspend", cfg.Admin.SuspendUser)
	guarded.Post("/admin/users/:id/activate", cfg.Admin.ActivateUser)
	guarded.Post("/admin/users/:id/wallet", cfg.Admin.AdjustWallet)
	guarded.Get("/admin/inventory", cfg.Admin.ListInventory)
	guarded.Put("/admin/inventory/:id", cfg.Admin.UpdateInventory)
	guarded.Post("/admin/pawn-requests/:id/approve", cfg.Admin.ApproveLoan)
	guarded.Post("/admin/pawn-requests/:id/validate", cfg.Admin.ValidateItem)
	guarded.Post("/admin/loans/:id/forfeit", cfg.Admin.ForfeitLoan)
	guarded.Get("/admin/logs", cfg.Admin.ActivityLog)
	guarded.Get("/admin/logs/local", cfg.Admin.LocalAuditLog)
}
