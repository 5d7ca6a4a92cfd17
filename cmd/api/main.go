package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"partbroker/internal/cascade"
	"partbroker/internal/database"
	"partbroker/internal/middleware"
	"partbroker/internal/modules/auth"
	"partbroker/internal/modules/file"
	"partbroker/internal/modules/notification"
	"partbroker/internal/modules/pricing"
	"partbroker/internal/modules/quote"
	"partbroker/internal/modules/quotenotif"
	jwtsvc "partbroker/internal/pkg/jwt"
	"partbroker/internal/storage"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("AUTH_SECRET_KEY")
	if secret == "" {
		log.Fatal("AUTH_SECRET_KEY is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&file.File{},
		&notification.Notification{},
		&quote.Quote{},
		&quotenotif.QuoteNotification{},
		&pricing.MaterialPrice{},
	); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	storageConf, err := storage.ConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	store, err := storage.NewClient(storageConf)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(secret, 24*time.Hour)

	fileRepo := file.NewRepository(db)
	notifRepo := notification.NewRepository(db)
	quoteRepo := quote.NewRepository(db)
	quoteNotifRepo := quotenotif.NewRepository(db)
	materialRepo := pricing.NewRepository(db)

	notifService := notification.NewService(notifRepo, fileRepo)
	quoteNotifService := quotenotif.NewService(quoteNotifRepo)
	fileService := file.NewService(db, fileRepo, store, notifService)
	quoteService := quote.NewService(db, quoteRepo, quoteNotifService)
	pricingService := pricing.NewService(materialRepo)
	rates := pricing.NewRateCache(pricing.RateTTLFromEnv(), nil)

	coordinator := cascade.NewCoordinator(db, store)

	authService := auth.NewService(j)
	authHandler := auth.NewHandler(authService)
	fileHandler := file.NewHandler(fileService, coordinator)
	notifHandler := notification.NewHandler(notifService)
	quoteHandler := quote.NewHandler(quoteService, coordinator)
	quoteNotifHandler := quotenotif.NewHandler(quoteNotifService)
	pricingHandler := pricing.NewHandler(pricingService, rates)

	r := gin.Default()
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			fileHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
			quoteHandler.RegisterRoutes(protected)
			quoteNotifHandler.RegisterRoutes(protected)
			pricingHandler.RegisterRoutes(protected)
		}
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
