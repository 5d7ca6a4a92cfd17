package pricing

import (
	"context"
	"errors"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&MaterialPrice{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewRepository(testDB(t)))
}

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func seedSteel(t *testing.T, svc *Service) {
	t.Helper()
	_, err := svc.CreateMaterial(context.Background(), CreateMaterialRequest{
		MaterialName:          "Steel",
		BasePricePerUnit:      55,
		MinimumOrderQuantity:  ptrI(25),
		BulkDiscountThreshold: ptrI(25),
		LaborCostPerHour:      ptrF(350),
	})
	if err != nil {
		t.Fatalf("seed steel: %v", err)
	}
}

func TestCalculateEstimate(t *testing.T) {
	svc := testService(t)
	seedSteel(t, svc)

	est, err := svc.CalculateEstimate(context.Background(), EstimateRequest{Material: "Steel", Quantity: 25})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}

	want := EstimateResponse{
		Material:              "Steel",
		Quantity:              25,
		BaseMaterialCost:      1375,
		LaborCost:             8750,
		Subtotal:              10125,
		BulkDiscount:          506.25,
		SubtotalAfterDiscount: 9618.75,
		Markup:                1923.75,
		TotalPrice:            11542.50,
		PricePerUnit:          461.70,
		Currency:              "INR",
		ComplexityFactor:      1.0,
		EstimatedDeliveryDays: 5,
	}
	if *est != want {
		t.Fatalf("estimate = %+v, want %+v", *est, want)
	}
}

func TestCalculateEstimateBelowMinimumOrder(t *testing.T) {
	svc := testService(t)
	seedSteel(t, svc)

	_, err := svc.CalculateEstimate(context.Background(), EstimateRequest{Material: "Steel", Quantity: 24})
	if !errors.Is(err, ErrBelowMinimumOrder) {
		t.Fatalf("err = %v, want ErrBelowMinimumOrder", err)
	}
}

func TestCalculateEstimateNoDiscountBelowThreshold(t *testing.T) {
	svc := testService(t)
	_, err := svc.CreateMaterial(context.Background(), CreateMaterialRequest{
		MaterialName:          "Brass",
		BasePricePerUnit:      400,
		MinimumOrderQuantity:  ptrI(1),
		BulkDiscountThreshold: ptrI(100),
	})
	if err != nil {
		t.Fatalf("seed brass: %v", err)
	}

	est, err := svc.CalculateEstimate(context.Background(), EstimateRequest{Material: "Brass", Quantity: 99})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.BulkDiscount != 0 {
		t.Fatalf("discount = %v below threshold, want 0", est.BulkDiscount)
	}
	if est.Subtotal != est.SubtotalAfterDiscount {
		t.Fatal("subtotal changed without a discount")
	}
}

func TestCalculateEstimateComplexityOverride(t *testing.T) {
	svc := testService(t)
	seedSteel(t, svc)

	est, err := svc.CalculateEstimate(context.Background(), EstimateRequest{
		Material:         "Steel",
		Quantity:         25,
		ComplexityFactor: ptrF(2.0),
	})
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.BaseMaterialCost != 2750 {
		t.Fatalf("base cost = %v with factor 2, want 2750", est.BaseMaterialCost)
	}

	_, err = svc.CalculateEstimate(context.Background(), EstimateRequest{
		Material:         "Steel",
		Quantity:         25,
		ComplexityFactor: ptrF(5.0),
	})
	if !errors.Is(err, ErrInvalidMaterial) {
		t.Fatalf("err = %v, want ErrInvalidMaterial for factor out of range", err)
	}
}

func TestCalculateEstimateUnknownMaterial(t *testing.T) {
	svc := testService(t)
	_, err := svc.CalculateEstimate(context.Background(), EstimateRequest{Material: "Unobtainium", Quantity: 10})
	if !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("err = %v, want ErrMaterialNotFound", err)
	}
}

func TestCreateMaterialDuplicate(t *testing.T) {
	svc := testService(t)
	seedSteel(t, svc)

	_, err := svc.CreateMaterial(context.Background(), CreateMaterialRequest{
		MaterialName:     "Steel",
		BasePricePerUnit: 60,
	})
	if !errors.Is(err, ErrMaterialExists) {
		t.Fatalf("err = %v, want ErrMaterialExists", err)
	}
}

func TestCreateMaterialDefaults(t *testing.T) {
	svc := testService(t)
	m, err := svc.CreateMaterial(context.Background(), CreateMaterialRequest{
		MaterialName:     "Cast Iron",
		BasePricePerUnit: 45,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.Currency != "INR" || m.Unit != "kg" || m.MarkupPercentage != 20 || m.LaborCostPerHour != 500 {
		t.Fatalf("defaults not applied: %+v", m)
	}
}

func TestUpdateMaterialPartial(t *testing.T) {
	svc := testService(t)
	seedSteel(t, svc)

	m, err := svc.UpdateMaterial(context.Background(), "Steel", MaterialUpdate{
		BasePricePerUnit: ptrF(60),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.BasePricePerUnit != 60 {
		t.Fatalf("base price = %v, want 60", m.BasePricePerUnit)
	}
	if m.LaborCostPerHour != 350 || m.MinimumOrderQuantity != 25 {
		t.Fatalf("untouched fields changed: %+v", m)
	}

	if _, err := svc.UpdateMaterial(context.Background(), "Steel", MaterialUpdate{MarkupPercentage: ptrF(150)}); !errors.Is(err, ErrInvalidMaterial) {
		t.Fatalf("err = %v, want ErrInvalidMaterial", err)
	}
	if _, err := svc.UpdateMaterial(context.Background(), "Unobtainium", MaterialUpdate{BasePricePerUnit: ptrF(1)}); !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("err = %v, want ErrMaterialNotFound", err)
	}
}

func TestDeleteMaterial(t *testing.T) {
	svc := testService(t)
	seedSteel(t, svc)

	if err := svc.DeleteMaterial(context.Background(), "Steel"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteMaterial(context.Background(), "Steel"); !errors.Is(err, ErrMaterialNotFound) {
		t.Fatalf("err = %v, want ErrMaterialNotFound", err)
	}
}
