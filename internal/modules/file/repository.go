package file

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*File, error)
	GetByObjectKey(ctx context.Context, objectKey string) (*File, error)
	GetByName(ctx context.Context, originalName string) (*File, error)
	List(ctx context.Context, limit, offset int, uploadedBy string) ([]File, int64, error)
	Search(ctx context.Context, req SearchRequest) ([]File, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*File, error) {
	var f File
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) GetByObjectKey(ctx context.Context, objectKey string) (*File, error) {
	var f File
	err := r.db.WithContext(ctx).Where("object_key = ?", objectKey).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) GetByName(ctx context.Context, originalName string) (*File, error) {
	var f File
	err := r.db.WithContext(ctx).Where("original_name = ?", originalName).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) List(ctx context.Context, limit, offset int, uploadedBy string) ([]File, int64, error) {
	q := r.db.WithContext(ctx).Model(&File{})
	if uploadedBy != "" {
		q = q.Where("uploaded_by = ?", uploadedBy)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var files []File
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&files).Error
	return files, total, err
}

func (r *repository) Search(ctx context.Context, req SearchRequest) ([]File, int64, error) {
	q := r.db.WithContext(ctx).Model(&File{})
	if req.Query != "" {
		q = q.Where("original_name LIKE ?", "%"+req.Query+"%")
	}
	if req.UploadedBy != "" {
		q = q.Where("uploaded_by = ?", req.UploadedBy)
	}
	if req.StartDate != nil {
		q = q.Where("created_at >= ?", *req.StartDate)
	}
	if req.EndDate != nil {
		q = q.Where("created_at <= ?", *req.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var files []File
	err := q.Order("created_at DESC").Limit(req.Limit).Offset(req.Offset).Find(&files).Error
	return files, total, err
}
