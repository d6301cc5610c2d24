package postgres

import (
	"errors"
	"strings"

	employeeDatamodel "github.com/dagimg/loan-management/internal/core/datamodel/employee"
	"github.com/dagimg/loan-management/internal/employee"
	"gorm.io/gorm"
)

// ProfileRepository implements the employee.Repository interface using GORM.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) employee.Repository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(p *employee.Profile) error {
	model := employee.ToDataModel(p)
	if err := r.db.Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return employee.ErrProfileAlreadyExists
		}
		return err
	}
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProfileRepository) GetByUserID(userID int64) (*employee.Profile, error) {
	var model employeeDatamodel.EmployeeProfile
	err := r.db.Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrProfileNotFound
		}
		return nil, err
	}
	return employee.FromDataModel(&model), nil
}

func (r *ProfileRepository) Update(p *employee.Profile) error {
	model := employee.ToDataModel(p)
	result := r.db.Model(&employeeDatamodel.EmployeeProfile{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"sub_city":        model.SubCity,
			"woreda":          model.Woreda,
			"house_number":    model.HouseNumber,
			"phone_number":    model.PhoneNumber,
			"guarantor_name":  model.GuarantorName,
			"guarantor_phone": model.GuarantorPhone,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrProfileNotFound
	}
	return nil
}

// isUniqueViolation matches the duplicate-key wording of both Postgres and
// SQLite so the in-memory test driver behaves like production.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
