package file

import "time"

type UploadRequest struct {
	Filename     string  `json:"filename" binding:"required"`
	ContentType  string  `json:"content_type"`
	FileSize     *int64  `json:"file_size"`
	Description  *string `json:"description"`
	Material     *string `json:"material"`
	PartNumber   *string `json:"part_number"`
	QuantityUnit string  `json:"quantity_unit"`
}

type UploadResult struct {
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
	FileID    int64  `json:"file_id"`
}

type SearchRequest struct {
	Query      string     `json:"query"`
	UploadedBy string     `json:"uploaded_by"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}
