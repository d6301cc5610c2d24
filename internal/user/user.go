package user

import (
	"errors"
	"time"

	"github.com/dagimg/loan-management/internal/auth"
	userDatamodel "github.com/dagimg/loan-management/internal/core/datamodel/user"
)

// Roles accepted by the admin endpoints. A role is only a named bundle of
// permissions; authorization decisions are always made on permissions.
const (
	RoleEmployee  = "EMPLOYEE"
	RoleHROfficer = "HR_OFFICER"
	RoleHRManager = "HR_MANAGER"
	RoleAdmin     = "ADMIN"
)

var rolePermissions = map[string][]string{
	RoleEmployee:  {auth.PermSubmitLoans, auth.PermViewOwnLoans},
	RoleHROfficer: {auth.PermViewAllLoans, auth.PermRecommendLoans},
	RoleHRManager: {auth.PermViewAllLoans, auth.PermFinalizeLoans},
	RoleAdmin:     {auth.PermManageUsers, auth.PermAdmin},
}

// PermissionsForRole resolves a role name to its permission grant set.
func PermissionsForRole(role string) ([]string, bool) {
	perms, ok := rolePermissions[role]
	return perms, ok
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Department   string    `json:"department"`
	IsActive     bool      `json:"is_active"`
	Permissions  []string  `json:"permissions,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

func (u *User) HasAnyPermission(permissions []string) bool {
	for _, userPerm := range u.Permissions {
		for _, requiredPerm := range permissions {
			if userPerm == requiredPerm {
				return true
			}
		}
	}
	return false
}

func (u *User) IsHRStaff() bool {
	return u.HasAnyPermission([]string{auth.PermRecommendLoans, auth.PermFinalizeLoans})
}

func (u *User) IsAdmin() bool {
	return u.HasPermission(auth.PermAdmin)
}

func (u *User) IsActiveUser() bool {
	return u.IsActive
}

var ErrNotFound = errors.New("user not found")

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Department:   u.Department,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Department:   u.Department,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Permissions:  []string{},
	}
}

func FromDataModelWithPermissions(u *userDatamodel.User, permissions []string) *User {
	domainUser := FromDataModel(u)
	domainUser.Permissions = permissions
	return domainUser
}
