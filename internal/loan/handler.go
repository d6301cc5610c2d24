package loan

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dagimg/loan-management/internal/auth"
	"github.com/dagimg/loan-management/internal/eligibility"
	"github.com/dagimg/loan-management/internal/transport"
	"github.com/dagimg/loan-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Submit(userID int64, dto CreateLoanDTO) (*LoanRequest, error)
	MyLoans(userID int64) ([]*LoanRequest, error)
	AllLoans() ([]*LoanWithEmployee, error)
	Eligibility(userID int64) (eligibility.Summary, error)
	Recommend(loanID, reviewerID int64) (*LoanRequest, error)
	Approve(loanID, approverID int64, dto ApproveLoanDTO) (*LoanRequest, error)
	Reject(loanID, approverID int64) (*LoanRequest, error)
	ContractPath(loanID int64, requester *auth.User) (string, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// SubmitLoan handles POST /loans
func (h *Handler) SubmitLoan(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateLoanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitLoan: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lr, err := h.Service.Submit(user.ID, dto)
	if err != nil {
		h.Logger.Error("SubmitLoan: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("SubmitLoan: loan submitted",
		"loan_id", lr.ID,
		"user_id", user.ID,
		"amount", lr.RequestedAmount,
		"queue_number", lr.QueueNumber)

	h.WriteJSON(w, http.StatusCreated, lr)
}

// GetMyLoans handles GET /loans/mine
func (h *Handler) GetMyLoans(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	loans, err := h.Service.MyLoans(user.ID)
	if err != nil {
		h.Logger.Error("GetMyLoans: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, loans)
}

// GetAllLoans handles GET /loans
func (h *Handler) GetAllLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.Service.AllLoans()
	if err != nil {
		h.Logger.Error("GetAllLoans: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, loans)
}

// GetEligibility handles GET /loans/eligibility
func (h *Handler) GetEligibility(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summary, err := h.Service.Eligibility(user.ID)
	if err != nil {
		h.Logger.Error("GetEligibility: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

// RecommendLoan handles POST /loans/{id}/recommend
func (h *Handler) RecommendLoan(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	loanID, ok := h.loanIDParam(w, r)
	if !ok {
		return
	}

	lr, err := h.Service.Recommend(loanID, user.ID)
	if err != nil {
		h.Logger.Error("RecommendLoan: service error", "error", err, "loan_id", loanID, "reviewer_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("RecommendLoan: loan recommended", "loan_id", loanID, "reviewer_id", user.ID)
	h.WriteJSON(w, http.StatusOK, lr)
}

// ApproveLoan handles POST /loans/{id}/approve
func (h *Handler) ApproveLoan(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	loanID, ok := h.loanIDParam(w, r)
	if !ok {
		return
	}

	var dto ApproveLoanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("ApproveLoan: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lr, err := h.Service.Approve(loanID, user.ID, dto)
	if err != nil {
		h.Logger.Error("ApproveLoan: service error", "error", err, "loan_id", loanID, "approver_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("ApproveLoan: loan approved",
		"loan_id", loanID,
		"approver_id", user.ID,
		"amount", dto.ApprovedAmount)

	h.WriteJSON(w, http.StatusOK, lr)
}

// RejectLoan handles POST /loans/{id}/reject
func (h *Handler) RejectLoan(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	loanID, ok := h.loanIDParam(w, r)
	if !ok {
		return
	}

	lr, err := h.Service.Reject(loanID, user.ID)
	if err != nil {
		h.Logger.Error("RejectLoan: service error", "error", err, "loan_id", loanID, "approver_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("RejectLoan: loan rejected", "loan_id", loanID, "approver_id", user.ID)
	h.WriteJSON(w, http.StatusOK, lr)
}

// GetContract handles GET /loans/{id}/contract
func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	loanID, ok := h.loanIDParam(w, r)
	if !ok {
		return
	}

	path, err := h.Service.ContractPath(loanID, user)
	if err != nil {
		h.Logger.Error("GetContract: service error", "error", err, "loan_id", loanID, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

func (h *Handler) loanIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid loan ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid loan ID")
		return 0, false
	}
	return id, true
}
