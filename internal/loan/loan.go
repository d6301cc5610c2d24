package loan

import (
	"errors"
	"time"

	loanDatamodel "github.com/dagimg/loan-management/internal/core/datamodel/loan"
)

// Workflow states of a request. PENDING moves to REVIEWED on an HR
// officer's recommendation; an HR manager finalizes REVIEWED to APPROVED
// or REJECTED. Terminal states never change again.
const (
	StatusPending  = "PENDING"
	StatusReviewed = "REVIEWED"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// QueueCounterName is the counter row backing queue number assignment.
const QueueCounterName = "loan_queue"

var (
	ErrLoanNotFound = errors.New("loan request not found")
)

// LoanRequest is the domain view of a salary-advance request.
type LoanRequest struct {
	ID              int64      `json:"id"`
	EmployeeID      int64      `json:"employee_id"`
	RequestedAmount int64      `json:"requested_amount"`
	ApprovedAmount  *int64     `json:"approved_amount,omitempty"`
	Status          string     `json:"status"`
	QueueNumber     int64      `json:"queue_number"`
	ContractPath    *string    `json:"-"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ReviewedBy      *int64     `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	ApprovedBy      *int64     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// HasContract reports whether an agreement document exists for this
// request.
func (lr *LoanRequest) HasContract() bool {
	return lr.ContractPath != nil && *lr.ContractPath != ""
}

// LoanWithEmployee is the HR review listing row.
type LoanWithEmployee struct {
	LoanRequest
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	GrossSalary  int64  `json:"gross_salary"`
}

func ToDataModel(lr *LoanRequest) *loanDatamodel.LoanRequest {
	return &loanDatamodel.LoanRequest{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		RequestedAmount: lr.RequestedAmount,
		ApprovedAmount:  lr.ApprovedAmount,
		Status:          lr.Status,
		QueueNumber:     lr.QueueNumber,
		ContractPath:    lr.ContractPath,
		SubmittedAt:     lr.SubmittedAt,
		ReviewedBy:      lr.ReviewedBy,
		ReviewedAt:      lr.ReviewedAt,
		ApprovedBy:      lr.ApprovedBy,
		ApprovedAt:      lr.ApprovedAt,
		CreatedAt:       lr.CreatedAt,
		UpdatedAt:       lr.UpdatedAt,
	}
}

func FromDataModel(m *loanDatamodel.LoanRequest) *LoanRequest {
	return &LoanRequest{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		RequestedAmount: m.RequestedAmount,
		ApprovedAmount:  m.ApprovedAmount,
		Status:          m.Status,
		QueueNumber:     m.QueueNumber,
		ContractPath:    m.ContractPath,
		SubmittedAt:     m.SubmittedAt,
		ReviewedBy:      m.ReviewedBy,
		ReviewedAt:      m.ReviewedAt,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
