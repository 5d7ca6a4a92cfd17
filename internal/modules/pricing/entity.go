package pricing

import "time"

// MaterialPrice is manufacturer-managed reference data for the estimate
// calculator. It is independent of any file or quote lifecycle.
type MaterialPrice struct {
	ID                        int64     `gorm:"column:id;primaryKey" json:"id"`
	MaterialName              string    `gorm:"column:material_name;uniqueIndex" json:"material_name"`
	BasePricePerUnit          float64   `gorm:"column:base_price_per_unit" json:"base_price_per_unit"`
	Currency                  string    `gorm:"column:currency;default:INR" json:"currency"`
	Unit                      string    `gorm:"column:unit;default:kg" json:"unit"`
	MachiningComplexityFactor float64   `gorm:"column:machining_complexity_factor;default:1.0" json:"machining_complexity_factor"`
	MinimumOrderQuantity      int       `gorm:"column:minimum_order_quantity;default:1" json:"minimum_order_quantity"`
	BulkDiscountThreshold     int       `gorm:"column:bulk_discount_threshold;default:10" json:"bulk_discount_threshold"`
	BulkDiscountPercentage    float64   `gorm:"column:bulk_discount_percentage;default:5.0" json:"bulk_discount_percentage"`
	LaborCostPerHour          float64   `gorm:"column:labor_cost_per_hour;default:500.0" json:"labor_cost_per_hour"`
	EstimatedHoursPerUnit     float64   `gorm:"column:estimated_hours_per_unit;default:1.0" json:"estimated_hours_per_unit"`
	MarkupPercentage          float64   `gorm:"column:markup_percentage;default:20.0" json:"markup_percentage"`
	CreatedAt                 time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt                 time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (MaterialPrice) TableName() string { return "material_prices" }
