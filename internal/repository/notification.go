package repository

import (
	"github.com/carebridge/careworker-go/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(n *notification.Notification) error
	CreateBatch(ns []notification.Notification) error
	ListByUser(userID uint, unreadOnly bool, limit int) ([]notification.Notification, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(userID, id uint) error
	MarkAllRead(userID uint) error
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{db: db}
}

func (r *DBNotificationRepo) Create(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) CreateBatch(ns []notification.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.db.Create(&ns).Error
}

func (r *DBNotificationRepo) ListByUser(userID uint, unreadOnly bool, limit int) ([]notification.Notification, error) {
	query := r.db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = false")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var ns []notification.Notification
	err := query.Order("created_at DESC").Find(&ns).Error
	return ns, err
}

func (r *DBNotificationRepo) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}

func (r *DBNotificationRepo) MarkRead(userID, id uint) error {
	res := r.db.Model(&notification.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBNotificationRepo) MarkAllRead(userID uint) error {
	return r.db.Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{db: tx}
}
