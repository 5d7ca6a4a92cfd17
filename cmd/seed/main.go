package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"partbroker/internal/database"
	"partbroker/internal/modules/pricing"
)

// Seeds the material price table with the standard Indian market rates.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "partbroker.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&pricing.MaterialPrice{}); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	log.Println("Cleaning old material prices...")
	db.Exec("DELETE FROM material_prices")

	materials := []pricing.MaterialPrice{
		{MaterialName: "Steel", BasePricePerUnit: 55.00, MinimumOrderQuantity: 25, BulkDiscountThreshold: 25},
		{MaterialName: "Aluminum", BasePricePerUnit: 225.00, MinimumOrderQuantity: 20, BulkDiscountThreshold: 20},
		{MaterialName: "Stainless Steel", BasePricePerUnit: 100.00, MinimumOrderQuantity: 30, BulkDiscountThreshold: 30},
		{MaterialName: "Cast Iron", BasePricePerUnit: 45.00, MinimumOrderQuantity: 10, BulkDiscountThreshold: 10},
		{MaterialName: "Brass", BasePricePerUnit: 400.00, MinimumOrderQuantity: 15, BulkDiscountThreshold: 15},
	}

	for i := range materials {
		m := &materials[i]
		m.Currency = "INR"
		m.Unit = "kg"
		m.MachiningComplexityFactor = 1.0
		m.BulkDiscountPercentage = 5.0
		m.LaborCostPerHour = 350.0
		m.EstimatedHoursPerUnit = 1.0
		m.MarkupPercentage = 20.0

		if err := db.Create(m).Error; err != nil {
			log.Fatalf("Seeding %s failed: %v", m.MaterialName, err)
		}
		log.Printf("Seeded %s (%.2f INR/kg, min order %d)", m.MaterialName, m.BasePricePerUnit, m.MinimumOrderQuantity)
	}

	log.Println("Done.")
}
