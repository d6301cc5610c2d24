package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/dagimg/loan-management/internal/auth"
	"github.com/dagimg/loan-management/internal/employee"
	"github.com/dagimg/loan-management/internal/loan"
	"github.com/dagimg/loan-management/internal/notification"
	"github.com/dagimg/loan-management/internal/transport/middleware"
	"github.com/dagimg/loan-management/internal/transport/swagger"
	"github.com/dagimg/loan-management/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, rbac *auth.RBACAuthorization, userHandler *user.Handler, employeeHandler *employee.Handler, loanHandler *loan.Handler, notificationHandler *notification.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
				sr.Post("/logout", authHandler.Logout)
			})
		}

		if authHandler == nil {
			return
		}

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			// Current user
			if userHandler != nil {
				pr.Get("/users/me", userHandler.GetCurrentUser)
			}

			// Administration routes (requires manage_users permission)
			if userHandler != nil {
				pr.Route("/admin", func(ar chi.Router) {
					ar.Use(rbac.RequireManageUsers())
					ar.Post("/users", userHandler.CreateUser)            // POST /admin/users
					ar.Get("/users", userHandler.ListUsers)              // GET /admin/users
					ar.Post("/reset-password", userHandler.ResetPassword)
					ar.Post("/seed-employees", userHandler.SeedEmployees)
					if employeeHandler != nil {
						ar.Post("/profiles", employeeHandler.CreateProfile)
					}
				})
			}

			// Loan routes
			if loanHandler != nil {
				pr.Route("/loans", func(lr chi.Router) {
					// Employee routes
					lr.With(middleware.RequirePermissions(auth.PermSubmitLoans)).Post("/", loanHandler.SubmitLoan) // POST /loans
					lr.With(middleware.RequirePermissions(auth.PermViewOwnLoans)).Get("/mine", loanHandler.GetMyLoans)
					lr.Get("/eligibility", loanHandler.GetEligibility)
					if employeeHandler != nil {
						lr.Get("/profile", employeeHandler.GetOwnProfile)
						lr.Put("/profile", employeeHandler.UpdateOwnProfile)
					}

					// HR routes with permission protection
					lr.Group(func(hr chi.Router) {
						hr.Use(rbac.RequireViewAllLoans())
						hr.Get("/", loanHandler.GetAllLoans) // GET /loans
					})

					lr.Group(func(hr chi.Router) {
						hr.Use(rbac.RequireRecommendLoans())
						hr.Post("/{id}/recommend", loanHandler.RecommendLoan) // POST /loans/:id/recommend
					})

					lr.Group(func(hr chi.Router) {
						hr.Use(rbac.RequireFinalizeLoans())
						hr.Post("/{id}/approve", loanHandler.ApproveLoan) // POST /loans/:id/approve
						hr.Post("/{id}/reject", loanHandler.RejectLoan)   // POST /loans/:id/reject
					})

					// Contract download checks ownership inside the service
					lr.Get("/{id}/contract", loanHandler.GetContract)
				})
			}

			// Notification routes
			if notificationHandler != nil {
				pr.Route("/notifications", func(nr chi.Router) {
					nr.Get("/", notificationHandler.ListNotifications)
					nr.Put("/{id}/read", notificationHandler.MarkRead)
					nr.Put("/read-all", notificationHandler.MarkAllRead)
				})
			}
		})
	})
}
