package quote

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Quote, error)
	List(ctx context.Context, createdBy string, status Status, limit, offset int) ([]Quote, int64, error)
	ListByStatus(ctx context.Context, status Status, limit, offset int) ([]Quote, int64, error)
	ListByNotification(ctx context.Context, notificationID int64) ([]Quote, error)
	ListByFile(ctx context.Context, fileID int64) ([]Quote, error)
	CountByStatus(ctx context.Context, createdBy string) (Stats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Quote, error) {
	var q Quote
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) List(ctx context.Context, createdBy string, status Status, limit, offset int) ([]Quote, int64, error) {
	query := r.db.WithContext(ctx).Model(&Quote{}).Where("created_by = ?", createdBy)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quotes []Quote
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&quotes).Error
	if err != nil {
		return nil, 0, err
	}
	return quotes, total, nil
}

func (r *repository) ListByStatus(ctx context.Context, status Status, limit, offset int) ([]Quote, int64, error) {
	query := r.db.WithContext(ctx).Model(&Quote{}).Where("status = ?", status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quotes []Quote
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&quotes).Error
	if err != nil {
		return nil, 0, err
	}
	return quotes, total, nil
}

func (r *repository) ListByNotification(ctx context.Context, notificationID int64) ([]Quote, error) {
	var quotes []Quote
	err := r.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *repository) ListByFile(ctx context.Context, fileID int64) ([]Quote, error) {
	var quotes []Quote
	err := r.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *repository) CountByStatus(ctx context.Context, createdBy string) (Stats, error) {
	var rows []struct {
		Status Status
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&Quote{}).
		Select("status, COUNT(*) as count").
		Where("created_by = ?", createdBy).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, row := range rows {
		stats.TotalQuotes += row.Count
		switch row.Status {
		case StatusPending:
			stats.PendingQuotes = row.Count
		case StatusSent:
			stats.SentQuotes = row.Count
		case StatusAccepted:
			stats.AcceptedQuotes = row.Count
		case StatusRejected:
			stats.RejectedQuotes = row.Count
		}
	}
	return stats, nil
}
