package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"freight-backend/internal/auth"
	"freight-backend/internal/cache"
	"freight-backend/internal/config"
	"freight-backend/internal/database"
	"freight-backend/internal/db"
	"freight-backend/internal/handlers"
	"freight-backend/internal/health"
	h "freight-backend/internal/http"
	"freight-backend/internal/middleware"
	"freight-backend/internal/repositories"
	"freight-backend/internal/services"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional: when it is down, logins just skip the cache.
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable, continuing without it (login will use bcrypt only): %v", err)
	}

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg)

	userRepo := repositories.NewUserRepository(pool)
	bookingRepo := repositories.NewBookingRepository(pool)
	loadingSheetRepo := repositories.NewLoadingSheetRepository(pool)
	deliveryRepo := repositories.NewDeliveryRepository(pool)
	loginLogRepo := repositories.NewLoginLogRepository(pool)

	userService := services.NewUserService(userRepo, jwtManager)
	bookingService := services.NewBookingService(bookingRepo)
	loadingSheetService := services.NewLoadingSheetService(loadingSheetRepo)
	deliveryService := services.NewDeliveryService(deliveryRepo)
	reportService := services.NewReportService(bookingRepo, loadingSheetRepo)

	// Seed the reserved admin account so a fresh install is usable
	if _, created, err := userService.EnsureAdminSeed(context.Background()); err != nil {
		log.Printf("[Auth] admin seed failed: %v", err)
	} else if created {
		log.Println("[Auth] Seeded default admin account")
	}

	healthChecker := health.NewHealthChecker(pool)

	authHandler := handlers.NewAuthHandler(userService, loginLogRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	loadingSheetHandler := handlers.NewLoadingSheetHandler(loadingSheetService, reportService)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService)
	reportHandler := handlers.NewReportHandler(reportService)
	loginLogHandler := handlers.NewLoginLogHandler(loginLogRepo)
	healthHandler := handlers.NewHealthHandler(healthChecker, cfg.Environment)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		bookingHandler,
		loadingSheetHandler,
		deliveryHandler,
		reportHandler,
		loginLogHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s (environment: %s)", addr, cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
