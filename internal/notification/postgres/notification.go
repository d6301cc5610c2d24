package postgres

import (
	notificationDatamodel "github.com/dagimg/loan-management/internal/core/datamodel/notification"
	"github.com/dagimg/loan-management/internal/notification"
	"gorm.io/gorm"
)

// NotificationRepository implements notification.Repository and
// notification.Directory using GORM.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *notification.Notification) error {
	model := notification.ToDataModel(n)
	if err := r.db.Create(model).Error; err != nil {
		return err
	}
	n.ID = model.ID
	n.CreatedAt = model.CreatedAt
	return nil
}

func (r *NotificationRepository) ListByUserID(userID int64, limit int) ([]*notification.Notification, error) {
	var models []notificationDatamodel.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, notification.FromDataModel(&models[i]))
	}
	return notifications, nil
}

// MarkRead updates only rows owned by the caller, so a foreign ID reads
// as not found.
func (r *NotificationRepository) MarkRead(id, userID int64) (bool, error) {
	result := r.db.Model(&notificationDatamodel.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *NotificationRepository) MarkAllRead(userID int64) (int64, error) {
	result := r.db.Model(&notificationDatamodel.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) UserIDsWithPermission(permission string) ([]int64, error) {
	var userIDs []int64
	err := r.db.
		Table("user_permissions").
		Select("user_permissions.user_id").
		Joins("JOIN permissions ON permissions.id = user_permissions.permission_id").
		Where("permissions.name = ?", permission).
		Scan(&userIDs).Error
	return userIDs, err
}
