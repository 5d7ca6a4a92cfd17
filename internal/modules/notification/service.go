package notification

import (
	"context"

	"gorm.io/gorm"

	"partbroker/internal/modules/file"
)

// Service is the manufacturer's upload inbox. There is a single inbox: every
// upload notification is visible to the manufacturer side as a whole.
type Service struct {
	repo  Repository
	files file.Repository
}

func NewService(repo Repository, files file.Repository) *Service {
	return &Service{repo: repo, files: files}
}

// NotifyFileUploaded implements file.UploadNotifier. It runs on the caller's
// upload transaction so the notification commits together with the file row.
func (s *Service) NotifyFileUploaded(tx *gorm.DB, fileID int64, objectKey, partName string,
	material, partNumber *string, quantityUnit, uploadedBy string, description *string) error {
	n := &Notification{
		FileID:       fileID,
		ObjectKey:    objectKey,
		PartName:     partName,
		Material:     material,
		PartNumber:   partNumber,
		QuantityUnit: &quantityUnit,
		UploadedBy:   uploadedBy,
		Description:  description,
		IsRead:       false,
	}
	return tx.Create(n).Error
}

func (s *Service) List(ctx context.Context, limit, offset int, unreadOnly bool) ([]Notification, int64, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	list, total, err := s.repo.List(ctx, limit, offset, unreadOnly)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, 0, 0, err
	}

	return list, total, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	return s.repo.MarkAllRead(ctx)
}

// GetDetails returns a notification together with the file it points to and
// marks it read. The file may be nil if it was already removed while the
// notification still lingers mid-cascade.
func (s *Service) GetDetails(ctx context.Context, id int64) (*Notification, *file.File, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	f, err := s.files.GetByID(ctx, n.FileID)
	if err != nil && err != file.ErrFileNotFound {
		return nil, nil, err
	}

	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, nil, err
	}
	n.IsRead = true

	return n, f, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}
