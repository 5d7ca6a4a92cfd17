package pricing

import (
	"context"
	"math"
)

const defaultDeliveryDays = 5

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateMaterial(ctx context.Context, req CreateMaterialRequest) (*MaterialPrice, error) {
	m := &MaterialPrice{
		MaterialName:              req.MaterialName,
		BasePricePerUnit:          req.BasePricePerUnit,
		Currency:                  "INR",
		Unit:                      "kg",
		MachiningComplexityFactor: 1.0,
		MinimumOrderQuantity:      1,
		BulkDiscountThreshold:     10,
		BulkDiscountPercentage:    5.0,
		LaborCostPerHour:          500.0,
		EstimatedHoursPerUnit:     1.0,
		MarkupPercentage:          20.0,
	}
	if req.Currency != "" {
		m.Currency = req.Currency
	}
	if req.Unit != "" {
		m.Unit = req.Unit
	}
	if req.MachiningComplexityFactor != nil {
		m.MachiningComplexityFactor = *req.MachiningComplexityFactor
	}
	if req.MinimumOrderQuantity != nil {
		m.MinimumOrderQuantity = *req.MinimumOrderQuantity
	}
	if req.BulkDiscountThreshold != nil {
		m.BulkDiscountThreshold = *req.BulkDiscountThreshold
	}
	if req.BulkDiscountPercentage != nil {
		m.BulkDiscountPercentage = *req.BulkDiscountPercentage
	}
	if req.LaborCostPerHour != nil {
		m.LaborCostPerHour = *req.LaborCostPerHour
	}
	if req.EstimatedHoursPerUnit != nil {
		m.EstimatedHoursPerUnit = *req.EstimatedHoursPerUnit
	}
	if req.MarkupPercentage != nil {
		m.MarkupPercentage = *req.MarkupPercentage
	}

	if err := validateMaterial(m); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetMaterial(ctx context.Context, name string) (*MaterialPrice, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *Service) ListMaterials(ctx context.Context, limit, offset int) ([]MaterialPrice, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateMaterial(ctx context.Context, name string, upd MaterialUpdate) (*MaterialPrice, error) {
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, name, upd)
}

func (s *Service) DeleteMaterial(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}

// CalculateEstimate answers "what would a quote roughly cost" from the
// stored reference rates. The bulk discount is all-or-nothing at the
// threshold; every money field is rounded only here, at the boundary.
func (s *Service) CalculateEstimate(ctx context.Context, req EstimateRequest) (*EstimateResponse, error) {
	m, err := s.repo.GetByName(ctx, req.Material)
	if err != nil {
		return nil, err
	}
	if req.Quantity < m.MinimumOrderQuantity {
		return nil, ErrBelowMinimumOrder
	}

	complexity := m.MachiningComplexityFactor
	if req.ComplexityFactor != nil {
		complexity = *req.ComplexityFactor
	}
	if complexity < 0.5 || complexity > 3.0 {
		return nil, ErrInvalidMaterial
	}

	baseMaterialCost := m.BasePricePerUnit * float64(req.Quantity) * complexity
	laborCost := m.LaborCostPerHour * m.EstimatedHoursPerUnit * float64(req.Quantity)
	subtotal := baseMaterialCost + laborCost

	bulkDiscount := 0.0
	if req.Quantity >= m.BulkDiscountThreshold {
		bulkDiscount = subtotal * (m.BulkDiscountPercentage / 100)
	}
	subtotalAfterDiscount := subtotal - bulkDiscount

	markup := subtotalAfterDiscount * (m.MarkupPercentage / 100)
	totalPrice := subtotalAfterDiscount + markup
	pricePerUnit := totalPrice / float64(req.Quantity)

	deliveryDays := defaultDeliveryDays
	if req.DeliveryDays != nil {
		deliveryDays = *req.DeliveryDays
	}

	return &EstimateResponse{
		Material:              req.Material,
		Quantity:              req.Quantity,
		BaseMaterialCost:      round2(baseMaterialCost),
		LaborCost:             round2(laborCost),
		Subtotal:              round2(subtotal),
		BulkDiscount:          round2(bulkDiscount),
		SubtotalAfterDiscount: round2(subtotalAfterDiscount),
		Markup:                round2(markup),
		TotalPrice:            round2(totalPrice),
		PricePerUnit:          round2(pricePerUnit),
		Currency:              m.Currency,
		ComplexityFactor:      complexity,
		EstimatedDeliveryDays: deliveryDays,
	}, nil
}

func validateMaterial(m *MaterialPrice) error {
	switch {
	case m.BasePricePerUnit <= 0,
		m.MachiningComplexityFactor < 0.5 || m.MachiningComplexityFactor > 3.0,
		m.MinimumOrderQuantity < 1,
		m.BulkDiscountThreshold < 1,
		m.BulkDiscountPercentage < 0 || m.BulkDiscountPercentage > 100,
		m.LaborCostPerHour <= 0,
		m.EstimatedHoursPerUnit <= 0,
		m.MarkupPercentage < 0 || m.MarkupPercentage > 100:
		return ErrInvalidMaterial
	}
	return nil
}

func validateUpdate(upd MaterialUpdate) error {
	switch {
	case upd.BasePricePerUnit != nil && *upd.BasePricePerUnit <= 0,
		upd.MachiningComplexityFactor != nil && (*upd.MachiningComplexityFactor < 0.5 || *upd.MachiningComplexityFactor > 3.0),
		upd.BulkDiscountThreshold != nil && *upd.BulkDiscountThreshold < 1,
		upd.BulkDiscountPercentage != nil && (*upd.BulkDiscountPercentage < 0 || *upd.BulkDiscountPercentage > 100),
		upd.LaborCostPerHour != nil && *upd.LaborCostPerHour <= 0,
		upd.EstimatedHoursPerUnit != nil && *upd.EstimatedHoursPerUnit <= 0,
		upd.MarkupPercentage != nil && (*upd.MarkupPercentage < 0 || *upd.MarkupPercentage > 100):
		return ErrInvalidMaterial
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
