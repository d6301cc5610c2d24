package employee

import (
	"errors"
	"log/slog"

	apperrors "github.com/dagimg/loan-management/internal"
	"github.com/dagimg/loan-management/internal/user"
)

// Repository defines the data access methods for employee profiles.
type Repository interface {
	Create(p *Profile) error
	GetByUserID(userID int64) (*Profile, error)
	Update(p *Profile) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateProfile registers a profile for a user account. A user holds at
// most one profile.
func (s *Service) CreateProfile(dto CreateProfileDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		if appErr, ok := apperrors.IsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	p := &Profile{
		UserID:         dto.UserID,
		FullName:       dto.FullName,
		YearOfBirth:    dto.YearOfBirth,
		JobLevel:       dto.JobLevel,
		Department:     dto.Department,
		GrossSalary:    dto.GrossSalary,
		SubCity:        dto.SubCity,
		Woreda:         dto.Woreda,
		HouseNumber:    dto.HouseNumber,
		PhoneNumber:    dto.PhoneNumber,
		EmploymentYear: dto.EmploymentYear,
		RetirementYear: dto.RetirementYear,
		GuarantorName:  dto.GuarantorName,
		GuarantorPhone: dto.GuarantorPhone,
	}

	if err := s.repo.Create(p); err != nil {
		if errors.Is(err, ErrProfileAlreadyExists) {
			return nil, apperrors.NewConflictError("profile already exists for this user", apperrors.ErrCodeProfileAlreadyExists)
		}
		s.logger.Error("failed to create profile", "error", err, "user_id", dto.UserID)
		return nil, apperrors.NewInternalError("failed to create profile", err)
	}

	s.logger.Info("profile created", "profile_id", p.ID, "user_id", p.UserID)
	return p, nil
}

// GetByUserID returns the profile owned by the given user account.
func (s *Service) GetByUserID(userID int64) (*Profile, error) {
	p, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("employee profile not found", apperrors.ErrCodeProfileNotFound)
		}
		return nil, apperrors.NewInternalError("failed to get profile", err)
	}
	return p, nil
}

// UpdateOwn applies the employee-editable fields to the caller's profile.
func (s *Service) UpdateOwn(userID int64, dto UpdateProfileDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	p, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("employee profile not found", apperrors.ErrCodeProfileNotFound)
		}
		return nil, apperrors.NewInternalError("failed to get profile", err)
	}

	if dto.SubCity != nil {
		p.SubCity = *dto.SubCity
	}
	if dto.Woreda != nil {
		p.Woreda = *dto.Woreda
	}
	if dto.HouseNumber != nil {
		p.HouseNumber = *dto.HouseNumber
	}
	if dto.PhoneNumber != nil {
		p.PhoneNumber = *dto.PhoneNumber
	}
	if dto.GuarantorName != nil {
		p.GuarantorName = *dto.GuarantorName
	}
	if dto.GuarantorPhone != nil {
		p.GuarantorPhone = *dto.GuarantorPhone
	}

	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update profile", "error", err, "user_id", userID)
		return nil, apperrors.NewInternalError("failed to update profile", err)
	}

	s.logger.Info("profile updated", "profile_id", p.ID, "user_id", userID)
	return p, nil
}

// CreateSeedProfile satisfies the bulk-seeding hook of the admin module.
func (s *Service) CreateSeedProfile(userID int64, seed user.SeedProfile) error {
	_, err := s.CreateProfile(CreateProfileDTO{
		UserID:         userID,
		FullName:       seed.FullName,
		YearOfBirth:    seed.YearOfBirth,
		JobLevel:       seed.JobLevel,
		Department:     seed.Department,
		GrossSalary:    seed.GrossSalary,
		SubCity:        seed.SubCity,
		Woreda:         seed.Woreda,
		HouseNumber:    seed.HouseNumber,
		PhoneNumber:    seed.PhoneNumber,
		EmploymentYear: seed.EmploymentYear,
		RetirementYear: seed.RetirementYear,
		GuarantorName:  seed.GuarantorName,
		GuarantorPhone: seed.GuarantorPhone,
	})
	return err
}
