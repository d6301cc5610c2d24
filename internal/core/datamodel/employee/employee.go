package employee

import "time"

// EmployeeProfile holds the salary and service-year facts that loan
// eligibility is computed from, one row per user account.
type EmployeeProfile struct {
	ID             int64     `gorm:"primaryKey"`
	UserID         int64     `gorm:"column:user_id;uniqueIndex;not null"`
	FullName       string    `gorm:"column:full_name;not null"`
	YearOfBirth    int       `gorm:"column:year_of_birth"`
	JobLevel       string    `gorm:"column:job_level"`
	Department     string    `gorm:"column:department"`
	GrossSalary    int64     `gorm:"column:gross_salary;not null"`
	SubCity        string    `gorm:"column:sub_city"`
	Woreda         string    `gorm:"column:woreda"`
	HouseNumber    string    `gorm:"column:house_number"`
	PhoneNumber    string    `gorm:"column:phone_number"`
	EmploymentYear int       `gorm:"column:employment_year;not null"`
	RetirementYear int       `gorm:"column:retirement_year;not null"`
	GuarantorName  string    `gorm:"column:guarantor_name"`
	GuarantorPhone string    `gorm:"column:guarantor_phone"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (EmployeeProfile) TableName() string {
	return "employee_profiles"
}
