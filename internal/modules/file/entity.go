package file

import "time"

// File is an uploaded CAD part record plus its object-storage pointer.
// Notifications and quotes reference it by id; the binary itself lives in the
// bucket under ObjectKey and is only ever touched through presigned URLs.
type File struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	ObjectKey    string    `gorm:"column:object_key;uniqueIndex" json:"object_key"`
	OriginalName string    `gorm:"column:original_name;index" json:"original_name"`
	ContentType  string    `gorm:"column:content_type" json:"content_type"`
	FileSize     *int64    `gorm:"column:file_size" json:"file_size,omitempty"`
	Checksum     *string   `gorm:"column:checksum" json:"checksum,omitempty"`
	Version      int       `gorm:"column:version;default:1" json:"version"`
	UploadedBy   string    `gorm:"column:uploaded_by;index" json:"uploaded_by"`
	Description  *string   `gorm:"column:description" json:"description,omitempty"`
	Material     *string   `gorm:"column:material" json:"material,omitempty"`
	PartNumber   *string   `gorm:"column:part_number" json:"part_number,omitempty"`
	QuantityUnit string    `gorm:"column:quantity_unit;default:pieces" json:"quantity_unit"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (File) TableName() string { return "files" }
