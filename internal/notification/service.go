package notification

import (
	"errors"
	"log/slog"

	apperrors "github.com/dagimg/loan-management/internal"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Notify stores a message for a user.
func (s *Service) Notify(userID int64, message string) error {
	n := &Notification{
		UserID:  userID,
		Message: message,
	}
	if err := s.repo.Create(n); err != nil {
		s.logger.Error("failed to create notification", "error", err, "user_id", userID)
		return err
	}
	return nil
}

// List returns the caller's newest notifications, capped at
// DefaultListLimit.
func (s *Service) List(userID int64) ([]*Notification, error) {
	notifications, err := s.repo.ListByUserID(userID, DefaultListLimit)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list notifications", err)
	}
	return notifications, nil
}

// MarkRead flags one of the caller's notifications as read. A foreign or
// unknown notification reads as not found; ownership is never leaked.
func (s *Service) MarkRead(id, userID int64) error {
	updated, err := s.repo.MarkRead(id, userID)
	if err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification not found", apperrors.ErrCodeNotificationNotFound)
		}
		return apperrors.NewInternalError("failed to mark notification read", err)
	}
	if !updated {
		return apperrors.NewNotFoundError("notification not found", apperrors.ErrCodeNotificationNotFound)
	}
	return nil
}

// MarkAllRead flags every unread notification of the caller as read.
func (s *Service) MarkAllRead(userID int64) (int64, error) {
	count, err := s.repo.MarkAllRead(userID)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to mark notifications read", err)
	}
	return count, nil
}
