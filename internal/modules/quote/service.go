package quote

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"partbroker/internal/modules/file"
)

const defaultProfitMarginPercent = 20.0

// QuoteNotifier delivers a quote notification to the buyer inside the
// same transaction that persists the quote.
type QuoteNotifier interface {
	NotifyQuoteSent(tx *gorm.DB, quoteID, fileID int64, sentBy, sentTo, partName string) error
}

type Service struct {
	db       *gorm.DB
	repo     Repository
	notifier QuoteNotifier
}

func NewService(db *gorm.DB, repo Repository, notifier QuoteNotifier) *Service {
	return &Service{db: db, repo: repo, notifier: notifier}
}

// Create prices the quote, persists it with status sent, and notifies the
// file's uploader — all in one transaction. A missing file fails the whole
// operation; nothing is persisted.
func (s *Service) Create(ctx context.Context, createdBy string, req CreateQuoteRequest) (*Quote, error) {
	if req.MaterialCost < 0 || req.LaborCost < 0 || req.MachineTimeCost < 0 {
		return nil, ErrInvalidCost
	}
	margin := defaultProfitMarginPercent
	if req.ProfitMarginPercent != nil {
		margin = *req.ProfitMarginPercent
	}
	if margin < 0 {
		return nil, ErrInvalidCost
	}

	subtotal, profit, total := ComputePrice(req.MaterialCost, req.LaborCost, req.MachineTimeCost, margin)

	q := &Quote{
		NotificationID:      req.NotificationID,
		FileID:              req.FileID,
		PartName:            req.PartName,
		PartNumber:          req.PartNumber,
		Material:            req.Material,
		QuantityUnit:        req.QuantityUnit,
		MaterialCost:        req.MaterialCost,
		LaborCost:           req.LaborCost,
		MachineTimeCost:     req.MachineTimeCost,
		Subtotal:            subtotal,
		ProfitMarginPercent: margin,
		ProfitAmount:        profit,
		TotalPrice:          total,
		Status:              StatusSent,
		Notes:               req.Notes,
		CreatedBy:           createdBy,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f file.File
		if err := tx.Where("id = ?", req.FileID).First(&f).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return file.ErrFileNotFound
			}
			return err
		}
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		return s.notifier.NotifyQuoteSent(tx, q.ID, q.FileID, createdBy, f.UploadedBy, q.PartName)
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Quote, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, createdBy string, status string, limit, offset int) ([]Quote, int64, error) {
	st := Status(status)
	if status != "" && !st.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	limit, offset = clampPage(limit, offset)
	return s.repo.List(ctx, createdBy, st, limit, offset)
}

func (s *Service) ListByStatus(ctx context.Context, status string, limit, offset int) ([]Quote, int64, error) {
	st := Status(status)
	if !st.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	limit, offset = clampPage(limit, offset)
	return s.repo.ListByStatus(ctx, st, limit, offset)
}

func (s *Service) ListByNotification(ctx context.Context, notificationID int64) ([]Quote, error) {
	return s.repo.ListByNotification(ctx, notificationID)
}

func (s *Service) ListByFile(ctx context.Context, fileID int64) ([]Quote, error) {
	return s.repo.ListByFile(ctx, fileID)
}

func (s *Service) Stats(ctx context.Context, createdBy string) (Stats, error) {
	return s.repo.CountByStatus(ctx, createdBy)
}

// UpdateStatus applies the sent→accepted and sent→rejected transitions. The
// guard lives in the UPDATE's WHERE clause, so concurrent decisions on the
// same quote cannot both win.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (*Quote, error) {
	target := Status(req.Status)
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}
	if target != StatusAccepted && target != StatusRejected {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"status":     target,
		"updated_at": now,
	}
	if target == StatusAccepted {
		updates["accepted_at"] = now
	} else {
		updates["rejected_at"] = now
		updates["rejection_reason"] = req.RejectionReason
	}

	res := s.db.WithContext(ctx).Model(&Quote{}).
		Where("id = ? AND status = ?", id, StatusSent).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	return s.repo.GetByID(ctx, id)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
