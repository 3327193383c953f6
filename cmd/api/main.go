package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/catalog"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/config"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/db"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/events"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/notify"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/orders"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/promocache"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/promotions"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/quote"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/receipt"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/reports"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/settings"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/tables"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	loc, err := time.LoadLocation(cfg.TZName)
	if err != nil {
		log.Fatalf("invalid TZ_NAME %q: %v", cfg.TZName, err)
	}
	// the store's clock: promotion weekdays follow this calendar
	now := func() time.Time { return time.Now().In(loc) }

	pool, err := db.NewPostgres(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// Repos
	catalogRepo := catalog.NewRepo(pool)
	promoRepo := promotions.NewRepo(pool)
	orderRepo := orders.NewRepo(pool)
	tableRepo := tables.NewRepo(pool)
	reportRepo := reports.NewRepo(pool)
	settingsRepo := settings.NewRepo(pool)

	// Optional promotion snapshot cache
	var promoSource quote.PromotionSource = promoRepo
	var invalidate func(context.Context)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		cache := promocache.New(promoRepo, rdb, logger)
		promoSource = cache
		invalidate = cache.Invalidate
		logger.Info("promotion cache enabled", "addr", cfg.RedisAddr)
	}

	// Optional order event publishing
	var publisher events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		kafka := events.NewKafka(cfg.KafkaBrokers)
		defer kafka.Close()
		publisher = kafka
		logger.Info("order events enabled", "brokers", cfg.KafkaBrokers)
	}

	notifier := notify.Log{StoreName: cfg.StoreName, Logger: logger}

	// Optional kitchen printer spool
	var printer receipt.Printer
	if cfg.PrinterDevice != "" {
		dev, err := os.OpenFile(cfg.PrinterDevice, os.O_WRONLY|os.O_APPEND, 0)
		if err != nil {
			log.Fatalf("open printer device %q: %v", cfg.PrinterDevice, err)
		}
		defer dev.Close()
		printer = receipt.Spool{W: dev}
		logger.Info("kitchen printer enabled", "device", cfg.PrinterDevice)
	}

	// Services and handlers
	quoteSvc := quote.NewService(catalogRepo, promoSource, now)
	orderSvc := orders.NewService(orderRepo, quoteSvc, publisher, notifier, printer, cfg.StoreName, logger)

	catalogHandler := catalog.NewHandler(catalogRepo)
	promoHandler := promotions.NewHandler(promoRepo, invalidate)
	quoteHandler := quote.NewHandler(quoteSvc)
	orderHandler := orders.NewHandler(orderSvc, orderRepo, cfg.StoreName)
	tableHandler := tables.NewHandler(tableRepo, orderRepo)
	reportHandler := reports.NewHandler(reportRepo, loc)
	settingsHandler := settings.NewHandler(settingsRepo)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	api := r.Group("/api")

	// Public menu and checkout
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/products", catalogHandler.ListPublic)
	api.GET("/products/:id", catalogHandler.GetPublic)
	api.GET("/settings", settingsHandler.Get)
	api.POST("/quote", quoteHandler.Quote)
	api.POST("/orders", orderHandler.Create)
	api.GET("/orders/:code", orderHandler.GetByCode)

	// Waiter/table endpoints
	api.GET("/tables", tableHandler.List)
	api.POST("/tables/:id/open", tableHandler.Open)
	api.GET("/tables/:id/session", tableHandler.Session)
	api.POST("/tables/:id/close", tableHandler.Close)

	// Back office
	admin := api.Group("/admin")
	{
		admin.GET("/categories", catalogHandler.AdminListCategories)
		admin.POST("/categories", catalogHandler.AdminCreateCategory)

		admin.POST("/products", catalogHandler.AdminCreateProduct)
		admin.GET("/products/:id", catalogHandler.AdminGetProduct)
		admin.PATCH("/products/:id", catalogHandler.AdminUpdateProduct)
		admin.PATCH("/products/:id/availability", catalogHandler.AdminSetAvailability)
		admin.PUT("/products/:id/groups", catalogHandler.AdminReplaceGroups)

		admin.GET("/promotions", promoHandler.AdminList)
		admin.POST("/promotions", promoHandler.AdminCreate)
		admin.GET("/promotions/:id", promoHandler.AdminGet)
		admin.PUT("/promotions/:id", promoHandler.AdminUpdate)
		admin.DELETE("/promotions/:id", promoHandler.AdminDelete)

		admin.GET("/orders", orderHandler.AdminList)
		admin.PATCH("/orders/:id/status", orderHandler.AdminUpdateStatus)
		admin.GET("/orders/:id/receipt", orderHandler.AdminReceipt)

		admin.POST("/tables", tableHandler.AdminCreate)
		admin.DELETE("/tables/:id", tableHandler.AdminDelete)

		admin.GET("/reports/summary", reportHandler.AdminSummary)
		admin.PUT("/settings", settingsHandler.AdminUpdate)
	}

	logger.Info("listening", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
