package auth

import "context"

type PermissionChecker interface {
	PermissionAuthorizer

	CanRecommendLoans(userPermissions []string) bool
	CanFinalizeLoans(userPermissions []string) bool
	CanViewAllLoans(userPermissions []string) bool
	CanManageUsers(userPermissions []string) bool
	HasAnyPermission(userPermissions []string, requiredPermissions []string) bool
	IsHRStaff(userPermissions []string) bool
	IsAdmin(userPermissions []string) bool
}

type DefaultPermissionChecker struct{}

func NewPermissionChecker() PermissionChecker {
	return &DefaultPermissionChecker{}
}

func (c *DefaultPermissionChecker) HasPermission(ctx context.Context, userPermissions []string, permission string) (bool, error) {
	return c.HasAnyPermission(userPermissions, []string{permission}), nil
}

func (c *DefaultPermissionChecker) CanRecommendLoansCtx(ctx context.Context, userPermissions []string) (bool, error) {
	return c.CanRecommendLoans(userPermissions), nil
}

func (c *DefaultPermissionChecker) CanFinalizeLoansCtx(ctx context.Context, userPermissions []string) (bool, error) {
	return c.CanFinalizeLoans(userPermissions), nil
}

func (c *DefaultPermissionChecker) CanViewAllLoansCtx(ctx context.Context, userPermissions []string) (bool, error) {
	return c.CanViewAllLoans(userPermissions), nil
}

func (c *DefaultPermissionChecker) CanManageUsersCtx(ctx context.Context, userPermissions []string) (bool, error) {
	return c.CanManageUsers(userPermissions), nil
}

func (c *DefaultPermissionChecker) IsHRStaffCtx(ctx context.Context, userPermissions []string) (bool, error) {
	return c.IsHRStaff(userPermissions), nil
}

func (c *DefaultPermissionChecker) IsAdminCtx(ctx context.Context, userPermissions []string) (bool, error) {
	return c.IsAdmin(userPermissions), nil
}

func (c *DefaultPermissionChecker) CanRecommendLoans(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{PermRecommendLoans, PermAdmin})
}

func (c *DefaultPermissionChecker) CanFinalizeLoans(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{PermFinalizeLoans, PermAdmin})
}

func (c *DefaultPermissionChecker) CanViewAllLoans(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{PermViewAllLoans, PermRecommendLoans, PermFinalizeLoans, PermAdmin})
}

func (c *DefaultPermissionChecker) CanManageUsers(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{PermManageUsers, PermAdmin})
}

func (c *DefaultPermissionChecker) HasAnyPermission(userPermissions []string, requiredPermissions []string) bool {
	for _, userPerm := range userPermissions {
		for _, requiredPerm := range requiredPermissions {
			if userPerm == requiredPerm {
				return true
			}
		}
	}
	return false
}

func (c *DefaultPermissionChecker) IsHRStaff(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{PermRecommendLoans, PermFinalizeLoans, PermAdmin})
}

func (c *DefaultPermissionChecker) IsAdmin(userPermissions []string) bool {
	return c.HasAnyPermission(userPermissions, []string{PermAdmin})
}
