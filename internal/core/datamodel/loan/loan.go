package loan

import "time"

// LoanRequest is the persistent record of a salary-advance request as it
// moves through the PENDING -> REVIEWED -> APPROVED/REJECTED workflow.
type LoanRequest struct {
	ID              int64      `gorm:"primaryKey"`
	EmployeeID      int64      `gorm:"column:employee_id;not null;index"`
	RequestedAmount int64      `gorm:"column:requested_amount;not null"`
	ApprovedAmount  *int64     `gorm:"column:approved_amount"`
	Status          string     `gorm:"column:status;default:PENDING;index"`
	QueueNumber     int64      `gorm:"column:queue_number;uniqueIndex;not null"`
	ContractPath    *string    `gorm:"column:contract_path"`
	SubmittedAt     time.Time  `gorm:"column:submitted_at"`
	ReviewedBy      *int64     `gorm:"column:reviewed_by"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at"`
	ApprovedBy      *int64     `gorm:"column:approved_by"`
	ApprovedAt      *time.Time `gorm:"column:approved_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (LoanRequest) TableName() string {
	return "loan_requests"
}

// LoanCounter backs the queue number sequence. A single named row is
// bumped with an atomic upsert so concurrent submissions never observe
// the same value.
type LoanCounter struct {
	Name  string `gorm:"primaryKey;column:name"`
	Value int64  `gorm:"column:value;not null"`
}

func (LoanCounter) TableName() string {
	return "loan_counters"
}
