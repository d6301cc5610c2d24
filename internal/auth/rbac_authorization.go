package auth

import (
	"context"
	"log/slog"
	"net/http"
)

type PermissionAuthorizer interface {
	HasPermission(ctx context.Context, userPermissions []string, permission string) (bool, error)
	CanRecommendLoansCtx(ctx context.Context, userPermissions []string) (bool, error)
	CanFinalizeLoansCtx(ctx context.Context, userPermissions []string) (bool, error)
	CanViewAllLoansCtx(ctx context.Context, userPermissions []string) (bool, error)
	CanManageUsersCtx(ctx context.Context, userPermissions []string) (bool, error)
	IsHRStaffCtx(ctx context.Context, userPermissions []string) (bool, error)
	IsAdminCtx(ctx context.Context, userPermissions []string) (bool, error)
}

type RBACAuthorization struct {
	authorizer PermissionAuthorizer
	logger     *slog.Logger
}

func NewRBACAuthorization(authorizer PermissionAuthorizer, logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{
		authorizer: authorizer,
		logger:     logger,
	}
}

func (ra *RBACAuthorization) require(check func(context.Context, []string) (bool, error), denyMsg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			allowed, err := check(r.Context(), user.Permissions)
			if err != nil {
				ra.logger.ErrorContext(r.Context(), "authorization check failed", "error", err, "user_id", user.ID)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			if !allowed {
				ra.logger.WarnContext(r.Context(), denyMsg, "user_id", user.ID, "user_permissions", user.Permissions)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (ra *RBACAuthorization) RequireRecommendLoans() func(http.Handler) http.Handler {
	return ra.require(ra.authorizer.CanRecommendLoansCtx, "access denied: cannot recommend loan requests")
}

func (ra *RBACAuthorization) RequireFinalizeLoans() func(http.Handler) http.Handler {
	return ra.require(ra.authorizer.CanFinalizeLoansCtx, "access denied: cannot finalize loan requests")
}

func (ra *RBACAuthorization) RequireViewAllLoans() func(http.Handler) http.Handler {
	return ra.require(ra.authorizer.CanViewAllLoansCtx, "access denied: cannot view all loan requests")
}

func (ra *RBACAuthorization) RequireManageUsers() func(http.Handler) http.Handler {
	return ra.require(ra.authorizer.CanManageUsersCtx, "access denied: cannot manage users")
}

func (ra *RBACAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.require(ra.authorizer.IsAdminCtx, "access denied: admin permissions required")
}
