package pricing

type CreateMaterialRequest struct {
	MaterialName              string   `json:"material_name" binding:"required"`
	BasePricePerUnit          float64  `json:"base_price_per_unit" binding:"required,gt=0"`
	Currency                  string   `json:"currency"`
	Unit                      string   `json:"unit"`
	MachiningComplexityFactor *float64 `json:"machining_complexity_factor"`
	MinimumOrderQuantity      *int     `json:"minimum_order_quantity"`
	BulkDiscountThreshold     *int     `json:"bulk_discount_threshold"`
	BulkDiscountPercentage    *float64 `json:"bulk_discount_percentage"`
	LaborCostPerHour          *float64 `json:"labor_cost_per_hour"`
	EstimatedHoursPerUnit     *float64 `json:"estimated_hours_per_unit"`
	MarkupPercentage          *float64 `json:"markup_percentage"`
}

// MaterialUpdate enumerates the mutable fields of a MaterialPrice.
// Nil means "leave unchanged"; only listed fields can be patched.
type MaterialUpdate struct {
	BasePricePerUnit          *float64 `json:"base_price_per_unit"`
	MachiningComplexityFactor *float64 `json:"machining_complexity_factor"`
	BulkDiscountThreshold     *int     `json:"bulk_discount_threshold"`
	BulkDiscountPercentage    *float64 `json:"bulk_discount_percentage"`
	LaborCostPerHour          *float64 `json:"labor_cost_per_hour"`
	EstimatedHoursPerUnit     *float64 `json:"estimated_hours_per_unit"`
	MarkupPercentage          *float64 `json:"markup_percentage"`
}

type EstimateRequest struct {
	Material         string   `json:"material" binding:"required"`
	Quantity         int      `json:"quantity" binding:"required,gte=1"`
	ComplexityFactor *float64 `json:"complexity_factor"`
	DeliveryDays     *int     `json:"delivery_days"`
}

// EstimateResponse carries the full breakdown, every money field rounded
// to two decimals at this boundary only.
type EstimateResponse struct {
	Material              string  `json:"material"`
	Quantity              int     `json:"quantity"`
	BaseMaterialCost      float64 `json:"base_material_cost"`
	LaborCost             float64 `json:"labor_cost"`
	Subtotal              float64 `json:"subtotal"`
	BulkDiscount          float64 `json:"bulk_discount"`
	SubtotalAfterDiscount float64 `json:"subtotal_after_discount"`
	Markup                float64 `json:"markup"`
	TotalPrice            float64 `json:"total_price"`
	PricePerUnit          float64 `json:"price_per_unit"`
	Currency              string  `json:"currency"`
	ComplexityFactor      float64 `json:"complexity_factor"`
	EstimatedDeliveryDays int     `json:"estimated_delivery_days"`
}
