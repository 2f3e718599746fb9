package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/interior-market/internal/api/http/handlers"
	"github.com/spec-kit/interior-market/internal/auth"
	"github.com/spec-kit/interior-market/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Consultations  *handlers.ConsultationsHandler
	Designs        *handlers.DesignsHandler
	Projects       *handlers.ProjectsHandler
	Payments       *handlers.PaymentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/google-login", cfg.Auth.GoogleLogin)
	authGroup.Get("/profile", cfg.AuthMiddleware.Handle, cfg.Auth.GetProfile)
	authGroup.Patch("/profile", cfg.AuthMiddleware.Handle, cfg.Auth.UpdateProfile)

	designs := api.Group("/designs", cfg.AuthMiddleware.Handle)
	designs.Get("/", cfg.Designs.ListDesigns)
	designs.Post("/", auth.RequireRole(domain.RoleDesigner, domain.RoleAdmin), cfg.Designs.CreateDesign)
	designs.Get("/user/:userId", cfg.Designs.ListDesignerDesigns)
	designs.Get("/:id", cfg.Designs.GetDesign)
	designs.Patch("/:id", auth.RequireRole(domain.RoleDesigner, domain.RoleAdmin), cfg.Designs.UpdateDesign)
	designs.Delete("/:id", auth.RequireRole(domain.RoleDesigner, domain.RoleAdmin), cfg.Designs.DeleteDesign)
	designs.Post("/:id/like", cfg.Designs.LikeDesign)
	designs.Post("/:id/comments", cfg.Designs.AddDesignComment)

	consultations := api.Group("/consultations", cfg.AuthMiddleware.Handle)
	consultations.Get("/my-consultations", cfg.Consultations.MyConsultations)
	consultations.Get("/designer-consultations", auth.RequireRole(domain.RoleDesigner, domain.RoleAdmin), cfg.Consultations.DesignerConsultations)
	consultations.Get("/upcoming", cfg.Consultations.UpcomingConsultations)
	consultations.Post("/", cfg.Consultations.CreateConsultation)
	consultations.Post("/new", cfg.Consultations.CreateConsultationAutoAssign)
	consultations.Get("/:id", cfg.Consultations.GetConsultation)
	consultations.Patch("/:id/status", auth.RequireRole(domain.RoleDesigner, domain.RoleAdmin), cfg.Consultations.UpdateConsultationStatus)
	consultations.Patch("/:id", auth.RequireRole(domain.RoleDesigner, domain.RoleAdmin), cfg.Consultations.UpdateConsultation)
	consultations.Post("/:id/notes", cfg.Consultations.AddConsultationNote)

	projects := api.Group("/projects", cfg.AuthMiddleware.Handle)
	projects.Get("/", cfg.Projects.ListProjects)
	projects.Post("/", cfg.Projects.CreateProject)
	projects.Get("/user/:userId", cfg.Projects.ListUserProjects)
	projects.Get("/:id", cfg.Projects.GetProject)
	projects.Patch("/:id", cfg.Projects.UpdateProject)
	projects.Post("/:id/notes", cfg.Projects.AddProjectNote)

	payments := api.Group("/payments", cfg.AuthMiddleware.Handle)
	payments.Post("/create-order", cfg.Payments.CreateOrder)
	payments.Post("/verify-payment", cfg.Payments.VerifyPayment)
	payments.Get("/order/:orderId", cfg.Payments.GetOrder)
}
