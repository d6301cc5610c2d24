package eligibility

import (
	"time"

	apperrors "github.com/dagimg/loan-management/internal"
)

// Policy constants for salary-advance eligibility. The ceiling is a
// multiple of gross salary, repaid over a fixed term, and no advance is
// granted within the final years before retirement.
const (
	SalaryMultiplier     = 6
	TermMonths           = 36
	MinYearsToRetirement = 3
)

// Clock supplies the current time. Injected so the retirement gate can be
// tested against fixed years.
type Clock func() time.Time

// Ceiling is the lifetime maximum advance for a salary.
func Ceiling(grossSalary int64) int64 {
	return grossSalary * SalaryMultiplier
}

// Remaining is the portion of the ceiling not yet consumed by approved
// requests. Never negative.
func Remaining(grossSalary, totalApproved int64) int64 {
	remaining := Ceiling(grossSalary) - totalApproved
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Summary is the employee-facing eligibility snapshot.
type Summary struct {
	Ceiling       int64 `json:"ceiling"`
	TotalApproved int64 `json:"total_approved"`
	Remaining     int64 `json:"remaining"`
}

func Summarize(grossSalary, totalApproved int64) Summary {
	return Summary{
		Ceiling:       Ceiling(grossSalary),
		TotalApproved: totalApproved,
		Remaining:     Remaining(grossSalary, totalApproved),
	}
}

// Checker applies the eligibility rules at submission and approval time.
type Checker struct {
	now Clock
}

func NewChecker(now Clock) *Checker {
	if now == nil {
		now = time.Now
	}
	return &Checker{now: now}
}

// CheckRetirementWindow rejects employees within MinYearsToRetirement
// years of their retirement year.
func (c *Checker) CheckRetirementWindow(retirementYear int) error {
	if retirementYear-c.now().Year() < MinYearsToRetirement {
		return apperrors.NewValidationError(
			"employee is too close to retirement for a salary advance",
			apperrors.ErrCodeRetirementWindow,
		)
	}
	return nil
}

// CheckAmount validates a requested or approved amount against the
// employee's remaining eligibility. Exhausted eligibility and an amount
// above the remaining headroom are reported as distinct errors.
func (c *Checker) CheckAmount(grossSalary, totalApproved, amount int64) error {
	remaining := Remaining(grossSalary, totalApproved)
	if remaining <= 0 {
		return apperrors.NewValidationError(
			"loan eligibility is exhausted",
			apperrors.ErrCodeEligibilityExhausted,
		)
	}
	if amount > remaining {
		return apperrors.NewValidationError(
			"requested amount exceeds remaining eligibility",
			apperrors.ErrCodeEligibilityExceeded,
		)
	}
	return nil
}
