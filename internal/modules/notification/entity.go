package notification

import "time"

// Notification tells the manufacturer that a buyer uploaded a part file.
// The part fields are a point-in-time snapshot of the file metadata taken at
// upload; editing the file later does not rewrite them.
type Notification struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	FileID       int64     `gorm:"column:file_id;index" json:"file_id"`
	ObjectKey    string    `gorm:"column:object_key" json:"object_key"`
	PartName     string    `gorm:"column:part_name" json:"part_name"`
	Material     *string   `gorm:"column:material" json:"material,omitempty"`
	PartNumber   *string   `gorm:"column:part_number" json:"part_number,omitempty"`
	QuantityUnit *string   `gorm:"column:quantity_unit" json:"quantity_unit,omitempty"`
	UploadedBy   string    `gorm:"column:uploaded_by" json:"uploaded_by"`
	Description  *string   `gorm:"column:description" json:"description,omitempty"`
	IsRead       bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Notification) TableName() string { return "notifications" }
