package quote

import "time"

// Status of a quote in its lifecycle
type Status string

const (
	// StatusPending is kept in the schema for data parity, but no code path
	// produces it: quotes are composed and sent in a single step.
	StatusPending  Status = "pending"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSent, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Quote is a manufacturer's priced offer for an uploaded part. The three
// derived values are computed once at creation and never recomputed.
type Quote struct {
	ID             int64   `gorm:"column:id;primaryKey" json:"id"`
	NotificationID int64   `gorm:"column:notification_id;index" json:"notification_id"`
	FileID         int64   `gorm:"column:file_id;index" json:"file_id"`
	PartName       string  `gorm:"column:part_name" json:"part_name"`
	PartNumber     *string `gorm:"column:part_number" json:"part_number,omitempty"`
	Material       *string `gorm:"column:material" json:"material,omitempty"`
	QuantityUnit   *string `gorm:"column:quantity_unit" json:"quantity_unit,omitempty"`

	MaterialCost        float64 `gorm:"column:material_cost" json:"material_cost"`
	LaborCost           float64 `gorm:"column:labor_cost" json:"labor_cost"`
	MachineTimeCost     float64 `gorm:"column:machine_time_cost" json:"machine_time_cost"`
	Subtotal            float64 `gorm:"column:subtotal" json:"subtotal"`
	ProfitMarginPercent float64 `gorm:"column:profit_margin_percent" json:"profit_margin_percent"`
	ProfitAmount        float64 `gorm:"column:profit_amount" json:"profit_amount"`
	TotalPrice          float64 `gorm:"column:total_price" json:"total_price"`

	Status          Status     `gorm:"column:status;index" json:"status"`
	Notes           *string    `gorm:"column:notes" json:"notes,omitempty"`
	CreatedBy       string     `gorm:"column:created_by;index" json:"created_by"`
	CreatedAt       time.Time  `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at" json:"updated_at"`
	AcceptedAt      *time.Time `gorm:"column:accepted_at" json:"accepted_at,omitempty"`
	RejectedAt      *time.Time `gorm:"column:rejected_at" json:"rejected_at,omitempty"`
	RejectionReason *string    `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
}

func (Quote) TableName() string { return "quotes" }
