package quote

type CreateQuoteRequest struct {
	NotificationID int64   `json:"notification_id" binding:"required"`
	FileID         int64   `json:"file_id" binding:"required"`
	PartName       string  `json:"part_name" binding:"required"`
	PartNumber     *string `json:"part_number"`
	Material       *string `json:"material"`
	QuantityUnit   *string `json:"quantity_unit"`

	MaterialCost        float64  `json:"material_cost"`
	LaborCost           float64  `json:"labor_cost"`
	MachineTimeCost     float64  `json:"machine_time_cost"`
	ProfitMarginPercent *float64 `json:"profit_margin_percent"`

	Notes *string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status          string  `json:"status" binding:"required"`
	RejectionReason *string `json:"rejection_reason"`
}

// Stats are per-status counts scoped to one manufacturer.
type Stats struct {
	TotalQuotes    int64 `json:"total_quotes"`
	PendingQuotes  int64 `json:"pending_quotes"`
	SentQuotes     int64 `json:"sent_quotes"`
	AcceptedQuotes int64 `json:"accepted_quotes"`
	RejectedQuotes int64 `json:"rejected_quotes"`
}
