package loan

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	apperrors "github.com/dagimg/loan-management/internal"
	"github.com/dagimg/loan-management/internal/auth"
	"github.com/dagimg/loan-management/internal/contract"
	"github.com/dagimg/loan-management/internal/core/events"
	"github.com/dagimg/loan-management/internal/eligibility"
	"github.com/dagimg/loan-management/internal/employee"
)

// Repository defines the data access methods for loan requests. The state
// transitions are compare-and-swap operations: they report false, without
// mutating, when the request was not in the expected source state (or, for
// Approve, when the amount no longer fits the employee's eligibility).
type Repository interface {
	CreateWithQueueNumber(lr *LoanRequest) error
	GetByID(id int64) (*LoanRequest, error)
	GetByEmployeeID(employeeID int64) ([]*LoanRequest, error)
	GetAll() ([]*LoanWithEmployee, error)
	TotalApproved(employeeID int64) (int64, error)
	Recommend(id, reviewerID int64) (bool, error)
	Approve(id, employeeID, approverID, amount, ceiling int64, contractPath string) (bool, error)
	Reject(id, approverID int64) (bool, error)
}

// ProfileAPI is the slice of the employee service the loan workflow needs.
type ProfileAPI interface {
	GetByUserID(userID int64) (*employee.Profile, error)
}

type Service struct {
	repo         Repository
	profiles     ProfileAPI
	checker      *eligibility.Checker
	renderer     contract.Renderer
	eventBus     *events.EventBus
	organization string
	logger       *slog.Logger
}

func NewService(
	repo Repository,
	profiles ProfileAPI,
	checker *eligibility.Checker,
	renderer contract.Renderer,
	eventBus *events.EventBus,
	organization string,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:         repo,
		profiles:     profiles,
		checker:      checker,
		renderer:     renderer,
		eventBus:     eventBus,
		organization: organization,
		logger:       logger,
	}
}

// Submit validates eligibility and creates a PENDING request with the next
// queue number.
func (s *Service) Submit(userID int64, dto CreateLoanDTO) (*LoanRequest, error) {
	if err := dto.Validate(); err != nil {
		if appErr, ok := apperrors.IsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	profile, err := s.profiles.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.checker.CheckRetirementWindow(profile.RetirementYear); err != nil {
		return nil, err
	}

	total, err := s.repo.TotalApproved(userID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to compute approved total", err)
	}
	if err := s.checker.CheckAmount(profile.GrossSalary, total, dto.RequestedAmount); err != nil {
		return nil, err
	}

	lr := &LoanRequest{
		EmployeeID:      userID,
		RequestedAmount: dto.RequestedAmount,
		Status:          StatusPending,
		SubmittedAt:     time.Now(),
	}
	if err := s.repo.CreateWithQueueNumber(lr); err != nil {
		s.logger.Error("failed to create loan request", "error", err, "user_id", userID)
		return nil, apperrors.NewInternalError("failed to create loan request", err)
	}

	s.logger.Info("loan request submitted",
		"loan_id", lr.ID,
		"user_id", userID,
		"amount", lr.RequestedAmount,
		"queue_number", lr.QueueNumber)

	s.eventBus.Publish(context.Background(), events.NewLoanSubmittedEvent(
		lr.ID, userID, profile.FullName, lr.RequestedAmount, lr.QueueNumber))

	return lr, nil
}

// MyLoans lists the caller's requests, newest first.
func (s *Service) MyLoans(userID int64) ([]*LoanRequest, error) {
	loans, err := s.repo.GetByEmployeeID(userID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list loan requests", err)
	}
	return loans, nil
}

// AllLoans lists every request with employee info for the HR review queue.
func (s *Service) AllLoans() ([]*LoanWithEmployee, error) {
	loans, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list loan requests", err)
	}
	return loans, nil
}

// Eligibility reports the caller's ceiling, approved total and headroom.
func (s *Service) Eligibility(userID int64) (eligibility.Summary, error) {
	profile, err := s.profiles.GetByUserID(userID)
	if err != nil {
		return eligibility.Summary{}, err
	}

	total, err := s.repo.TotalApproved(userID)
	if err != nil {
		return eligibility.Summary{}, apperrors.NewInternalError("failed to compute approved total", err)
	}

	return eligibility.Summarize(profile.GrossSalary, total), nil
}

// Recommend moves a PENDING request to REVIEWED, stamping the reviewer.
func (s *Service) Recommend(loanID, reviewerID int64) (*LoanRequest, error) {
	lr, err := s.getLoan(loanID)
	if err != nil {
		return nil, err
	}

	applied, err := s.repo.Recommend(loanID, reviewerID)
	if err != nil {
		s.logger.Error("failed to recommend loan", "error", err, "loan_id", loanID)
		return nil, apperrors.NewInternalError("failed to recommend loan", err)
	}
	if !applied {
		return nil, apperrors.NewConflictError(
			"loan request is not awaiting recommendation",
			apperrors.ErrCodeInvalidStateTransition,
		)
	}

	s.logger.Info("loan recommended", "loan_id", loanID, "reviewer_id", reviewerID)

	if profile, perr := s.profiles.GetByUserID(lr.EmployeeID); perr == nil {
		s.eventBus.Publish(context.Background(), events.NewLoanRecommendedEvent(
			loanID, lr.EmployeeID, profile.FullName, lr.RequestedAmount, reviewerID))
	}

	return s.getLoan(loanID)
}

// Approve finalizes a REVIEWED request. The agreement document is rendered
// before the state commit; a render failure fails the approval, and the
// document is discarded if the commit loses to a concurrent transition or
// to exhausted eligibility.
func (s *Service) Approve(loanID, approverID int64, dto ApproveLoanDTO) (*LoanRequest, error) {
	if err := dto.Validate(); err != nil {
		if appErr, ok := apperrors.IsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.NewValidationError(err.Error(), apperrors.ErrCodeValidationFailed)
	}

	lr, err := s.getLoan(loanID)
	if err != nil {
		return nil, err
	}
	if lr.Status != StatusReviewed {
		return nil, apperrors.NewConflictError(
			"loan request is not awaiting finalization",
			apperrors.ErrCodeInvalidStateTransition,
		)
	}

	profile, err := s.profiles.GetByUserID(lr.EmployeeID)
	if err != nil {
		return nil, err
	}

	path, err := s.renderer.Render(contract.Data{
		QueueNumber:    lr.QueueNumber,
		EmployeeName:   profile.FullName,
		Department:     profile.Department,
		ApprovedAmount: dto.ApprovedAmount,
		TermMonths:     eligibility.TermMonths,
		Organization:   s.organization,
	})
	if err != nil {
		s.logger.Error("contract rendering failed", "error", err, "loan_id", loanID)
		return nil, apperrors.NewExternalError("failed to render loan contract", apperrors.ErrCodeContractRenderFailed, err)
	}

	ceiling := eligibility.Ceiling(profile.GrossSalary)
	applied, err := s.repo.Approve(loanID, lr.EmployeeID, approverID, dto.ApprovedAmount, ceiling, path)
	if err != nil {
		s.discardContract(path)
		s.logger.Error("failed to approve loan", "error", err, "loan_id", loanID)
		return nil, apperrors.NewInternalError("failed to approve loan", err)
	}
	if !applied {
		s.discardContract(path)
		current, rerr := s.getLoan(loanID)
		if rerr == nil && current.Status == StatusReviewed {
			return nil, apperrors.NewValidationError(
				"approved amount exceeds remaining eligibility",
				apperrors.ErrCodeEligibilityExceeded,
			)
		}
		return nil, apperrors.NewConflictError(
			"loan request is not awaiting finalization",
			apperrors.ErrCodeInvalidStateTransition,
		)
	}

	s.logger.Info("loan approved",
		"loan_id", loanID,
		"approver_id", approverID,
		"amount", dto.ApprovedAmount,
		"contract_path", path)

	s.eventBus.Publish(context.Background(), events.NewLoanApprovedEvent(
		loanID, lr.EmployeeID, lr.RequestedAmount, dto.ApprovedAmount, approverID))

	return s.getLoan(loanID)
}

// Reject finalizes a REVIEWED request as REJECTED with a zero approved
// amount.
func (s *Service) Reject(loanID, approverID int64) (*LoanRequest, error) {
	lr, err := s.getLoan(loanID)
	if err != nil {
		return nil, err
	}

	applied, err := s.repo.Reject(loanID, approverID)
	if err != nil {
		s.logger.Error("failed to reject loan", "error", err, "loan_id", loanID)
		return nil, apperrors.NewInternalError("failed to reject loan", err)
	}
	if !applied {
		return nil, apperrors.NewConflictError(
			"loan request is not awaiting finalization",
			apperrors.ErrCodeInvalidStateTransition,
		)
	}

	s.logger.Info("loan rejected", "loan_id", loanID, "approver_id", approverID)

	s.eventBus.Publish(context.Background(), events.NewLoanRejectedEvent(
		loanID, lr.EmployeeID, lr.RequestedAmount, approverID))

	return s.getLoan(loanID)
}

// ContractPath returns the agreement document location for serving. Only
// the owner and HR staff may read it; it exists only once approved.
func (s *Service) ContractPath(loanID int64, requester *auth.User) (string, error) {
	lr, err := s.getLoan(loanID)
	if err != nil {
		return "", err
	}

	if requester.ID != lr.EmployeeID && !requester.IsHRStaff() && !requester.IsAdmin() {
		return "", apperrors.NewForbiddenError("not allowed to read this contract", apperrors.ErrCodeUnauthorizedAccess)
	}

	if lr.Status != StatusApproved || !lr.HasContract() {
		return "", apperrors.NewNotFoundError("contract is not available for this loan", apperrors.ErrCodeContractNotReady)
	}

	return *lr.ContractPath, nil
}

func (s *Service) getLoan(loanID int64) (*LoanRequest, error) {
	lr, err := s.repo.GetByID(loanID)
	if err != nil {
		if errors.Is(err, ErrLoanNotFound) {
			return nil, apperrors.NewNotFoundError("loan request not found", apperrors.ErrCodeLoanNotFound)
		}
		return nil, apperrors.NewInternalError("failed to get loan request", err)
	}
	return lr, nil
}

func (s *Service) discardContract(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove unused contract file", "error", err, "path", path)
	}
}
