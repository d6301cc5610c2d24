package notification

import (
	"errors"
	"time"

	notificationDatamodel "github.com/dagimg/loan-management/internal/core/datamodel/notification"
)

// DefaultListLimit caps the notification feed at the most recent entries.
const DefaultListLimit = 20

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrNotificationNotFound = errors.New("notification not found")

// Repository defines the data access methods for notifications.
type Repository interface {
	Create(n *Notification) error
	ListByUserID(userID int64, limit int) ([]*Notification, error)
	MarkRead(id, userID int64) (bool, error)
	MarkAllRead(userID int64) (int64, error)
}

// Directory resolves the user accounts holding a permission, used to fan
// notifications out to HR staff.
type Directory interface {
	UserIDsWithPermission(permission string) ([]int64, error)
}

func ToDataModel(n *Notification) *notificationDatamodel.Notification {
	return &notificationDatamodel.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func FromDataModel(m *notificationDatamodel.Notification) *Notification {
	return &Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
