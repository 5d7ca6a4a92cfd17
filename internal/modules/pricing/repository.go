package pricing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m *MaterialPrice) error
	GetByName(ctx context.Context, name string) (*MaterialPrice, error)
	List(ctx context.Context, limit, offset int) ([]MaterialPrice, error)
	Update(ctx context.Context, name string, upd MaterialUpdate) (*MaterialPrice, error)
	Delete(ctx context.Context, name string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *MaterialPrice) error {
	err := r.db.WithContext(ctx).Create(m).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrMaterialExists
		}
		return err
	}
	return nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*MaterialPrice, error) {
	var m MaterialPrice
	err := r.db.WithContext(ctx).Where("material_name = ?", name).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]MaterialPrice, error) {
	var list []MaterialPrice
	err := r.db.WithContext(ctx).
		Order("material_name ASC").
		Limit(limit).Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, name string, upd MaterialUpdate) (*MaterialPrice, error) {
	updates := map[string]interface{}{}
	if upd.BasePricePerUnit != nil {
		updates["base_price_per_unit"] = *upd.BasePricePerUnit
	}
	if upd.MachiningComplexityFactor != nil {
		updates["machining_complexity_factor"] = *upd.MachiningComplexityFactor
	}
	if upd.BulkDiscountThreshold != nil {
		updates["bulk_discount_threshold"] = *upd.BulkDiscountThreshold
	}
	if upd.BulkDiscountPercentage != nil {
		updates["bulk_discount_percentage"] = *upd.BulkDiscountPercentage
	}
	if upd.LaborCostPerHour != nil {
		updates["labor_cost_per_hour"] = *upd.LaborCostPerHour
	}
	if upd.EstimatedHoursPerUnit != nil {
		updates["estimated_hours_per_unit"] = *upd.EstimatedHoursPerUnit
	}
	if upd.MarkupPercentage != nil {
		updates["markup_percentage"] = *upd.MarkupPercentage
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		res := r.db.WithContext(ctx).Model(&MaterialPrice{}).
			Where("material_name = ?", name).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrMaterialNotFound
		}
	}

	return r.GetByName(ctx, name)
}

func (r *repository) Delete(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("material_name = ?", name).Delete(&MaterialPrice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMaterialNotFound
	}
	return nil
}

// isUniqueViolation recognizes duplicate-key errors from both backends:
// Postgres reports SQLSTATE 23505, the sqlite driver only a message.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
