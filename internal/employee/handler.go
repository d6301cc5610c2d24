package employee

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dagimg/loan-management/internal/auth"
	"github.com/dagimg/loan-management/internal/transport"
	"github.com/dagimg/loan-management/pkg/logger"
)

type ServiceAPI interface {
	CreateProfile(dto CreateProfileDTO) (*Profile, error)
	GetByUserID(userID int64) (*Profile, error)
	UpdateOwn(userID int64, dto UpdateProfileDTO) (*Profile, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// CreateProfile handles POST /admin/profiles
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var dto CreateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateProfile: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreateProfile(dto)
	if err != nil {
		h.Logger.Error("CreateProfile: service error", "error", err, "user_id", dto.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateProfile: profile created", "profile_id", p.ID, "user_id", p.UserID)
	h.WriteJSON(w, http.StatusCreated, p)
}

// GetOwnProfile handles GET /loans/profile
func (h *Handler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p, err := h.Service.GetByUserID(user.ID)
	if err != nil {
		h.Logger.Error("GetOwnProfile: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

// UpdateOwnProfile handles PUT /loans/profile
func (h *Handler) UpdateOwnProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateOwnProfile: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.UpdateOwn(user.ID, dto)
	if err != nil {
		h.Logger.Error("UpdateOwnProfile: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}
