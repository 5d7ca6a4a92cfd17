package quotenotif

import (
	"context"

	"gorm.io/gorm"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NotifyQuoteSent creates the buyer's notification on the caller's
// transaction, so a quote and its notification commit or roll back together.
func (s *Service) NotifyQuoteSent(tx *gorm.DB, quoteID, fileID int64, sentBy, sentTo, partName string) error {
	n := &QuoteNotification{
		QuoteID:  quoteID,
		FileID:   fileID,
		SentBy:   sentBy,
		SentTo:   sentTo,
		PartName: partName,
	}
	return tx.Create(n).Error
}

func (s *Service) List(ctx context.Context, recipient string, limit, offset int, unreadOnly bool) ([]QuoteNotification, int64, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	list, total, err := s.repo.List(ctx, recipient, limit, offset, unreadOnly)
	if err != nil {
		return nil, 0, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, recipient)
	if err != nil {
		return nil, 0, 0, err
	}
	return list, total, unread, nil
}

func (s *Service) UnreadCount(ctx context.Context, recipient string) (int64, error) {
	return s.repo.CountUnread(ctx, recipient)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context, recipient string) (int64, error) {
	return s.repo.MarkAllRead(ctx, recipient)
}

func (s *Service) Delete(ctx context.Context, id int64, recipient string) error {
	return s.repo.Delete(ctx, id, recipient)
}

func (s *Service) DeleteAll(ctx context.Context, recipient string) (int64, error) {
	return s.repo.DeleteAll(ctx, recipient)
}
