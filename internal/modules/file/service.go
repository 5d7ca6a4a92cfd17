package file

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaxFileSize = 500 * 1024 * 1024 // 500 MB, CAD assemblies get big

	uploadURLTTL   = 15 * time.Minute
	downloadURLTTL = time.Hour
)

var allowedExtensions = []string{".stp", ".step", ".igs", ".iges"}

// Presigner issues time-limited URLs for direct bucket access.
type Presigner interface {
	PresignUpload(ctx context.Context, key string, expires time.Duration) (string, error)
	PresignDownload(ctx context.Context, key string, expires time.Duration) (string, error)
}

// UploadNotifier records the manufacturer-facing notification for a fresh
// upload. It runs on the upload transaction so the file row and its
// notification commit or roll back together. Implemented by the notification
// service.
type UploadNotifier interface {
	NotifyFileUploaded(tx *gorm.DB, fileID int64, objectKey, partName string,
		material, partNumber *string, quantityUnit, uploadedBy string, description *string) error
}

// Service owns the upload flow: validate, presign, then insert the File and
// its upload Notification in one transaction.
type Service struct {
	db       *gorm.DB
	repo     Repository
	store    Presigner
	notifier UploadNotifier
}

func NewService(db *gorm.DB, repo Repository, store Presigner, notifier UploadNotifier) *Service {
	return &Service{db: db, repo: repo, store: store, notifier: notifier}
}

// RequestUpload registers the file metadata and returns a presigned PUT URL.
// Presigning happens before the transaction: if storage is down the upload
// fails outright and no rows are written.
func (s *Service) RequestUpload(ctx context.Context, uploadedBy string, req UploadRequest) (*UploadResult, error) {
	if !hasAllowedExtension(req.Filename) {
		return nil, ErrInvalidExtension
	}
	if req.FileSize != nil && *req.FileSize > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	if _, err := s.repo.GetByName(ctx, req.Filename); err == nil {
		return nil, ErrDuplicateName
	} else if err != ErrFileNotFound {
		return nil, err
	}

	timestamp := time.Now().UTC().Format("20060102_150405")
	objectKey := fmt.Sprintf("stp/%s_%s_%s", timestamp, uuid.New().String(), req.Filename)

	uploadURL, err := s.store.PresignUpload(ctx, objectKey, uploadURLTTL)
	if err != nil {
		return nil, err
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/stp"
	}
	quantityUnit := req.QuantityUnit
	if quantityUnit == "" {
		quantityUnit = "pieces"
	}

	f := &File{
		ObjectKey:    objectKey,
		OriginalName: req.Filename,
		ContentType:  contentType,
		FileSize:     req.FileSize,
		Version:      1,
		UploadedBy:   uploadedBy,
		Description:  req.Description,
		Material:     req.Material,
		PartNumber:   req.PartNumber,
		QuantityUnit: quantityUnit,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(f).Error; err != nil {
			return err
		}
		return s.notifier.NotifyFileUploaded(tx, f.ID, objectKey, trimCADExtension(req.Filename),
			req.Material, req.PartNumber, quantityUnit, uploadedBy, req.Description)
	})
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		FileID:    f.ID,
	}, nil
}

// RequestDownload returns a presigned GET URL for a stored object.
func (s *Service) RequestDownload(ctx context.Context, objectKey string) (string, *File, error) {
	f, err := s.repo.GetByObjectKey(ctx, objectKey)
	if err != nil {
		return "", nil, err
	}

	downloadURL, err := s.store.PresignDownload(ctx, objectKey, downloadURLTTL)
	if err != nil {
		return "", nil, err
	}
	return downloadURL, f, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*File, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByObjectKey(ctx context.Context, objectKey string) (*File, error) {
	return s.repo.GetByObjectKey(ctx, objectKey)
}

func (s *Service) List(ctx context.Context, limit, offset int, uploadedBy string) ([]File, int64, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset, uploadedBy)
}

func (s *Service) Search(ctx context.Context, req SearchRequest) ([]File, int64, error) {
	if req.Limit <= 0 || req.Limit > 500 {
		req.Limit = 100
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	return s.repo.Search(ctx, req)
}

func hasAllowedExtension(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(lower, ext) && len(lower) > len(ext) {
			return true
		}
	}
	return false
}

func trimCADExtension(filename string) string {
	lower := strings.ToLower(filename)
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return filename[:len(filename)-len(ext)]
		}
	}
	return filename
}
