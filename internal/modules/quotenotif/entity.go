package quotenotif

import "time"

// QuoteNotification tells a buyer that a manufacturer sent them a quote.
// Unlike upload notifications, these are scoped to their recipient.
type QuoteNotification struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	QuoteID   int64     `gorm:"column:quote_id;index" json:"quote_id"`
	FileID    int64     `gorm:"column:file_id;index" json:"file_id"`
	SentBy    string    `gorm:"column:sent_by" json:"sent_by"`
	SentTo    string    `gorm:"column:sent_to;index" json:"sent_to"`
	PartName  string    `gorm:"column:part_name" json:"part_name"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (QuoteNotification) TableName() string { return "quote_notifications" }
