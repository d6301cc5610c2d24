package employee

import (
	"errors"

	"github.com/dagimg/loan-management/internal/core/common/validation"
)

// CreateProfileDTO is the admin payload for registering an employee profile.
type CreateProfileDTO struct {
	UserID         int64  `json:"user_id"`
	FullName       string `json:"full_name"`
	YearOfBirth    int    `json:"year_of_birth"`
	JobLevel       string `json:"job_level"`
	Department     string `json:"department"`
	GrossSalary    int64  `json:"gross_salary"`
	SubCity        string `json:"sub_city"`
	Woreda         string `json:"woreda"`
	HouseNumber    string `json:"house_number"`
	PhoneNumber    string `json:"phone_number"`
	EmploymentYear int    `json:"employment_year"`
	RetirementYear int    `json:"retirement_year"`
	GuarantorName  string `json:"guarantor_name"`
	GuarantorPhone string `json:"guarantor_phone"`
}

func (d CreateProfileDTO) Validate() error {
	if d.UserID <= 0 {
		return errors.New("user_id is required")
	}
	if d.FullName == "" {
		return errors.New("full_name is required")
	}
	if d.GrossSalary <= 0 {
		return errors.New("gross_salary must be greater than 0")
	}
	if err := validation.ValidateEmploymentYears(d.EmploymentYear, d.RetirementYear); err != nil {
		return err
	}
	return nil
}

// UpdateProfileDTO carries the fields an employee may edit on their own
// profile. Salary and service years stay admin-controlled.
type UpdateProfileDTO struct {
	SubCity        *string `json:"sub_city,omitempty"`
	Woreda         *string `json:"woreda,omitempty"`
	HouseNumber    *string `json:"house_number,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	GuarantorName  *string `json:"guarantor_name,omitempty"`
	GuarantorPhone *string `json:"guarantor_phone,omitempty"`
}

func (d UpdateProfileDTO) Validate() error {
	if d.SubCity == nil && d.Woreda == nil && d.HouseNumber == nil &&
		d.PhoneNumber == nil && d.GuarantorName == nil && d.GuarantorPhone == nil {
		return errors.New("at least one field must be provided")
	}
	return nil
}
