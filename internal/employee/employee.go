package employee

import (
	"errors"
	"time"

	employeeDatamodel "github.com/dagimg/loan-management/internal/core/datamodel/employee"
)

// Profile is the domain view of an employee's loan-relevant record. Exactly
// one profile exists per user account.
type Profile struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	FullName       string    `json:"full_name"`
	YearOfBirth    int       `json:"year_of_birth,omitempty"`
	JobLevel       string    `json:"job_level,omitempty"`
	Department     string    `json:"department,omitempty"`
	GrossSalary    int64     `json:"gross_salary"`
	SubCity        string    `json:"sub_city,omitempty"`
	Woreda         string    `json:"woreda,omitempty"`
	HouseNumber    string    `json:"house_number,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	EmploymentYear int       `json:"employment_year"`
	RetirementYear int       `json:"retirement_year"`
	GuarantorName  string    `json:"guarantor_name,omitempty"`
	GuarantorPhone string    `json:"guarantor_phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

var (
	ErrProfileNotFound      = errors.New("employee profile not found")
	ErrProfileAlreadyExists = errors.New("employee profile already exists")
)

func ToDataModel(p *Profile) *employeeDatamodel.EmployeeProfile {
	return &employeeDatamodel.EmployeeProfile{
		ID:             p.ID,
		UserID:         p.UserID,
		FullName:       p.FullName,
		YearOfBirth:    p.YearOfBirth,
		JobLevel:       p.JobLevel,
		Department:     p.Department,
		GrossSalary:    p.GrossSalary,
		SubCity:        p.SubCity,
		Woreda:         p.Woreda,
		HouseNumber:    p.HouseNumber,
		PhoneNumber:    p.PhoneNumber,
		EmploymentYear: p.EmploymentYear,
		RetirementYear: p.RetirementYear,
		GuarantorName:  p.GuarantorName,
		GuarantorPhone: p.GuarantorPhone,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromDataModel(m *employeeDatamodel.EmployeeProfile) *Profile {
	return &Profile{
		ID:             m.ID,
		UserID:         m.UserID,
		FullName:       m.FullName,
		YearOfBirth:    m.YearOfBirth,
		JobLevel:       m.JobLevel,
		Department:     m.Department,
		GrossSalary:    m.GrossSalary,
		SubCity:        m.SubCity,
		Woreda:         m.Woreda,
		HouseNumber:    m.HouseNumber,
		PhoneNumber:    m.PhoneNumber,
		EmploymentYear: m.EmploymentYear,
		RetirementYear: m.RetirementYear,
		GuarantorName:  m.GuarantorName,
		GuarantorPhone: m.GuarantorPhone,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
