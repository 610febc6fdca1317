package store

import (
	"context"
	"errors"

	"dashboard-service/internal/model"

	"gorm.io/gorm"
)

func (s *gormStore) ListUserNotifications(ctx context.Context, userID uint) ([]model.Notification, error) {
	var notifications []model.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	if err != nil {
		return nil, normalize(err)
	}
	return notifications, nil
}

func (s *gormStore) CreateNotification(ctx context.Context, notification *model.Notification) error {
	return normalize(s.db.WithContext(ctx).Create(notification).Error)
}

// MarkNotificationRead flips the read flag and stamps read_at once.
// Marking an already-read notification is a no-op that still reports
// success, and never clears or moves the original stamp.
func (s *gormStore) MarkNotificationRead(ctx context.Context, userID, id uint) (bool, error) {
	var notification model.Notification
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, normalize(err)
	}
	if notification.IsRead {
		return true, nil
	}

	err = s.db.WithContext(ctx).Model(&notification).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": s.now(),
		}).Error
	if err != nil {
		return false, normalize(err)
	}
	return true, nil
}

func (s *gormStore) CountUnreadNotifications(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, normalize(err)
	}
	return count, nil
}
