package user

import (
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/dagimg/loan-management/internal"
)

// Repository defines the data access methods for user accounts.
type Repository interface {
	GetByID(userID int64) (*User, error)
	GetByEmail(email string) (*User, error)
	GetPermissions(userID int64) ([]string, error)
	Create(u *User) error
	GrantPermissions(userID int64, permissionNames []string, grantedBy *int64) error
	UpdatePassword(userID int64, passwordHash string) error
	List() ([]*User, error)
}

// PasswordHasher abstracts the credential hashing done by the auth service.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// ProfileCreator mirrors seeded employee rows onto the profile store.
type ProfileCreator interface {
	CreateSeedProfile(userID int64, p SeedProfile) error
}

// DefaultSeedPassword is applied to bulk-seeded accounts that carry no
// explicit password. HR rotates these on first login.
const DefaultSeedPassword = "ChangeMe123!"

type Service struct {
	repo           Repository
	hasher         PasswordHasher
	profileCreator ProfileCreator
	logger         *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, profileCreator ProfileCreator, logger *slog.Logger) *Service {
	return &Service{
		repo:           repo,
		hasher:         hasher,
		profileCreator: profileCreator,
		logger:         logger,
	}
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	perms, err := s.repo.GetPermissions(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user permissions: %w", err)
	}
	u.Permissions = perms

	return u, nil
}

// CreateUser registers an account and grants the permission set of the
// requested role. Emails are unique across accounts.
func (s *Service) CreateUser(dto CreateUserDTO, createdBy int64) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("email already registered", apperrors.ErrCodeEmailAlreadyExists)
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	u := &User{
		Email:        dto.Email,
		Name:         dto.Name,
		PasswordHash: hash,
		Department:   dto.Department,
		IsActive:     true,
	}
	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	perms, _ := PermissionsForRole(dto.Role)
	if err := s.repo.GrantPermissions(u.ID, perms, &createdBy); err != nil {
		s.logger.Error("failed to grant permissions", "error", err, "user_id", u.ID, "role", dto.Role)
		return nil, apperrors.NewInternalError("failed to grant permissions", err)
	}
	u.Permissions = perms

	s.logger.Info("user created", "user_id", u.ID, "email", u.Email, "role", dto.Role)
	return u, nil
}

func (s *Service) ResetPassword(dto ResetPasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	u, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFoundError("user not found", apperrors.ErrCodeUserNotFound)
		}
		return apperrors.NewInternalError("failed to look up user", err)
	}

	hash, err := s.hasher.HashPassword(dto.NewPassword)
	if err != nil {
		return apperrors.NewInternalError("failed to hash password", err)
	}

	if err := s.repo.UpdatePassword(u.ID, hash); err != nil {
		s.logger.Error("failed to update password", "error", err, "user_id", u.ID)
		return apperrors.NewInternalError("failed to update password", err)
	}

	s.logger.Info("password reset", "user_id", u.ID)
	return nil
}

func (s *Service) ListUsers() ([]*User, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}
	return users, nil
}

// SeedEmployees bulk-creates employee accounts with profiles. Each row is
// processed independently; one bad row never aborts the batch.
func (s *Service) SeedEmployees(dto SeedEmployeesDTO, createdBy int64) ([]SeedResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	results := make([]SeedResult, 0, len(dto.Employees))
	for _, row := range dto.Employees {
		results = append(results, s.seedOne(row, createdBy))
	}
	return results, nil
}

func (s *Service) seedOne(row SeedEmployeeDTO, createdBy int64) SeedResult {
	result := SeedResult{Email: row.Email}

	if err := row.Validate(); err != nil {
		result.Error = err.Error()
		return result
	}

	if existing, err := s.repo.GetByEmail(row.Email); err == nil && existing != nil {
		result.Error = "email already registered"
		return result
	}

	password := row.Password
	if password == "" {
		password = DefaultSeedPassword
	}
	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		result.Error = "failed to hash password"
		return result
	}

	u := &User{
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: hash,
		Department:   row.Profile.Department,
		IsActive:     true,
	}
	if err := s.repo.Create(u); err != nil {
		s.logger.Error("seed: failed to create user", "error", err, "email", row.Email)
		result.Error = "failed to create user"
		return result
	}

	perms, _ := PermissionsForRole(RoleEmployee)
	if err := s.repo.GrantPermissions(u.ID, perms, &createdBy); err != nil {
		s.logger.Error("seed: failed to grant permissions", "error", err, "user_id", u.ID)
		result.Error = "failed to grant permissions"
		return result
	}

	if err := s.profileCreator.CreateSeedProfile(u.ID, row.Profile); err != nil {
		s.logger.Error("seed: failed to create profile", "error", err, "user_id", u.ID)
		result.Error = "failed to create profile"
		return result
	}

	result.UserID = u.ID
	result.Success = true
	return result
}
