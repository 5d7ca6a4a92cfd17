package quotenotif

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*QuoteNotification, error)
	List(ctx context.Context, recipient string, limit, offset int, unreadOnly bool) ([]QuoteNotification, int64, error)
	CountUnread(ctx context.Context, recipient string) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, recipient string) (int64, error)
	Delete(ctx context.Context, id int64, recipient string) error
	DeleteAll(ctx context.Context, recipient string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*QuoteNotification, error) {
	var n QuoteNotification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *repository) List(ctx context.Context, recipient string, limit, offset int, unreadOnly bool) ([]QuoteNotification, int64, error) {
	query := r.db.WithContext(ctx).Model(&QuoteNotification{}).Where("sent_to = ?", recipient)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []QuoteNotification
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *repository) CountUnread(ctx context.Context, recipient string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&QuoteNotification{}).
		Where("sent_to = ? AND is_read = ?", recipient, false).
		Count(&count).Error
	return count, err
}

func (r *repository) MarkRead(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&QuoteNotification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true, "updated_at": time.Now().UTC()}).Error
}

func (r *repository) MarkAllRead(ctx context.Context, recipient string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&QuoteNotification{}).
		Where("sent_to = ? AND is_read = ?", recipient, false).
		Updates(map[string]interface{}{"is_read": true, "updated_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}

// Delete only removes the recipient's own notification; someone else's id
// looks the same as a missing one.
func (r *repository) Delete(ctx context.Context, id int64, recipient string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND sent_to = ?", id, recipient).
		Delete(&QuoteNotification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *repository) DeleteAll(ctx context.Context, recipient string) (int64, error) {
	res := r.db.WithContext(ctx).Where("sent_to = ?", recipient).Delete(&QuoteNotification{})
	return res.RowsAffected, res.Error
}
