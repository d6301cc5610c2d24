package user

import "errors"

// CreateUserDTO is the admin payload for creating an account with a role.
type CreateUserDTO struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

func (d CreateUserDTO) Validate() error {
	if d.Email == "" {
		return errors.New("email is required")
	}
	if d.Name == "" {
		return errors.New("name is required")
	}
	if len(d.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if _, ok := PermissionsForRole(d.Role); !ok {
		return errors.New("role must be one of EMPLOYEE, HR_OFFICER, HR_MANAGER, ADMIN")
	}
	return nil
}

type ResetPasswordDTO struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

func (d ResetPasswordDTO) Validate() error {
	if d.Email == "" {
		return errors.New("email is required")
	}
	if len(d.NewPassword) < 8 {
		return errors.New("new_password must be at least 8 characters")
	}
	return nil
}

// SeedProfile carries the employee profile attributes accepted during bulk
// seeding, mirrored onto the profile store by the wiring layer.
type SeedProfile struct {
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

// SeedEmployeeDTO is one row of the bulk seeding payload. Password is
// optional; the service substitutes DefaultSeedPassword when omitted.
type SeedEmployeeDTO struct {
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Password string      `json:"password,omitempty"`
	Profile  SeedProfile `json:"profile"`
}

func (d SeedEmployeeDTO) Validate() error {
	if d.Email == "" {
		return errors.New("email is required")
	}
	if d.Name == "" {
		return errors.New("name is required")
	}
	if d.Profile.GrossSalary <= 0 {
		return errors.New("profile.gross_salary must be greater than 0")
	}
	if d.Profile.RetirementYear <= d.Profile.EmploymentYear {
		return errors.New("profile.retirement_year must be greater than profile.employment_year")
	}
	return nil
}

type SeedEmployeesDTO struct {
	Employees []SeedEmployeeDTO `json:"employees"`
}

func (d SeedEmployeesDTO) Validate() error {
	if len(d.Employees) == 0 {
		return errors.New("employees is required")
	}
	return nil
}

// SeedResult reports the per-row outcome of a bulk seed.
type SeedResult struct {
	Email   string `json:"email"`
	UserID  int64  `json:"user_id,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
