package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeLoanSubmitted   = "loan.submitted"
	EventTypeLoanRecommended = "loan.recommended"
	EventTypeLoanApproved    = "loan.approved"
	EventTypeLoanRejected    = "loan.rejected"
)

type LoanSubmittedEvent struct {
	BaseEvent
	LoanID          int64  `json:"loan_id"`
	EmployeeUserID  int64  `json:"employee_user_id"`
	EmployeeName    string `json:"employee_name"`
	RequestedAmount int64  `json:"requested_amount"`
	QueueNumber     int64  `json:"queue_number"`
}

func NewLoanSubmittedEvent(loanID, employeeUserID int64, employeeName string, requestedAmount, queueNumber int64) *LoanSubmittedEvent {
	return &LoanSubmittedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeLoanSubmitted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"loan_id":          loanID,
				"employee_user_id": employeeUserID,
				"employee_name":    employeeName,
				"requested_amount": requestedAmount,
				"queue_number":     queueNumber,
			},
		},
		LoanID:          loanID,
		EmployeeUserID:  employeeUserID,
		EmployeeName:    employeeName,
		RequestedAmount: requestedAmount,
		QueueNumber:     queueNumber,
	}
}

type LoanRecommendedEvent struct {
	BaseEvent
	LoanID          int64  `json:"loan_id"`
	EmployeeUserID  int64  `json:"employee_user_id"`
	EmployeeName    string `json:"employee_name"`
	RequestedAmount int64  `json:"requested_amount"`
	ReviewerID      int64  `json:"reviewer_id"`
}

func NewLoanRecommendedEvent(loanID, employeeUserID int64, employeeName string, requestedAmount, reviewerID int64) *LoanRecommendedEvent {
	return &LoanRecommendedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeLoanRecommended,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"loan_id":          loanID,
				"employee_user_id": employeeUserID,
				"employee_name":    employeeName,
				"requested_amount": requestedAmount,
				"reviewer_id":      reviewerID,
			},
		},
		LoanID:          loanID,
		EmployeeUserID:  employeeUserID,
		EmployeeName:    employeeName,
		RequestedAmount: requestedAmount,
		ReviewerID:      reviewerID,
	}
}

type LoanFinalizedEvent struct {
	BaseEvent
	LoanID          int64 `json:"loan_id"`
	EmployeeUserID  int64 `json:"employee_user_id"`
	RequestedAmount int64 `json:"requested_amount"`
	ApprovedAmount  int64 `json:"approved_amount"`
	ApproverID      int64 `json:"approver_id"`
}

func NewLoanApprovedEvent(loanID, employeeUserID, requestedAmount, approvedAmount, approverID int64) *LoanFinalizedEvent {
	return newFinalizedEvent(EventTypeLoanApproved, loanID, employeeUserID, requestedAmount, approvedAmount, approverID)
}

func NewLoanRejectedEvent(loanID, employeeUserID, requestedAmount, approverID int64) *LoanFinalizedEvent {
	return newFinalizedEvent(EventTypeLoanRejected, loanID, employeeUserID, requestedAmount, 0, approverID)
}

func newFinalizedEvent(eventType string, loanID, employeeUserID, requestedAmount, approvedAmount, approverID int64) *LoanFinalizedEvent {
	return &LoanFinalizedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"loan_id":          loanID,
				"employee_user_id": employeeUserID,
				"requested_amount": requestedAmount,
				"approved_amount":  approvedAmount,
				"approver_id":      approverID,
			},
		},
		LoanID:          loanID,
		EmployeeUserID:  employeeUserID,
		RequestedAmount: requestedAmount,
		ApprovedAmount:  approvedAmount,
		ApproverID:      approverID,
	}
}
