package loan

import (
	"github.com/dagimg/loan-management/internal/core/common/validation"
)

// CreateLoanDTO is the employee's submission payload.
type CreateLoanDTO struct {
	RequestedAmount int64 `json:"requested_amount"`
}

func (d CreateLoanDTO) Validate() error {
	if err := validation.ValidateLoanAmount(d.RequestedAmount); err != nil {
		return err
	}
	return nil
}

// ApproveLoanDTO is the HR manager's finalization payload. The approved
// amount may be lower than the requested amount but never absent.
type ApproveLoanDTO struct {
	ApprovedAmount int64 `json:"approved_amount"`
}

func (d ApproveLoanDTO) Validate() error {
	if err := validation.ValidateLoanAmount(d.ApprovedAmount); err != nil {
		return err
	}
	return nil
}
