package cascade

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"partbroker/internal/modules/file"
	"partbroker/internal/modules/notification"
	"partbroker/internal/modules/quote"
	"partbroker/internal/modules/quotenotif"
)

// ObjectRemover deletes a stored object. Removal failures are tolerated:
// a leaked object is recoverable, a half-deleted database is not.
type ObjectRemover interface {
	Remove(ctx context.Context, key string) error
}

// Coordinator owns the multi-table deletion sequences. Each sequence runs
// in a single transaction; any database error rolls the whole thing back.
type Coordinator struct {
	db      *gorm.DB
	remover ObjectRemover
}

func NewCoordinator(db *gorm.DB, remover ObjectRemover) *Coordinator {
	return &Coordinator{db: db, remover: remover}
}

// DeleteFile removes a file and everything hanging off it, deepest
// dependents first: quote notifications, quotes, upload notifications,
// the stored object (best effort), then the file row itself.
func (c *Coordinator) DeleteFile(ctx context.Context, fileID int64) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f file.File
		if err := tx.Where("id = ?", fileID).First(&f).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return file.ErrFileNotFound
			}
			return err
		}

		var quoteIDs []int64
		if err := tx.Model(&quote.Quote{}).
			Where("file_id = ?", fileID).
			Pluck("id", &quoteIDs).Error; err != nil {
			return err
		}

		if len(quoteIDs) > 0 {
			if err := tx.Where("quote_id IN ?", quoteIDs).
				Delete(&quotenotif.QuoteNotification{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", quoteIDs).
				Delete(&quote.Quote{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("file_id = ?", fileID).
			Delete(&notification.Notification{}).Error; err != nil {
			return err
		}

		if err := c.remover.Remove(ctx, f.ObjectKey); err != nil {
			log.Printf("cascade: object %s not removed, continuing: %v", f.ObjectKey, err)
		}

		return tx.Where("id = ?", fileID).Delete(&file.File{}).Error
	})
}

// DeleteQuote removes a quote together with its notifications.
func (c *Coordinator) DeleteQuote(ctx context.Context, quoteID int64) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", quoteID).
			Delete(&quotenotif.QuoteNotification{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", quoteID).Delete(&quote.Quote{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return quote.ErrQuoteNotFound
		}
		return nil
	})
}
