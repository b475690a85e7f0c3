package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/velomir/auto-shop-scheduler/internal/config"
	"github.com/velomir/auto-shop-scheduler/internal/database"
	"github.com/velomir/auto-shop-scheduler/internal/handler"
	"github.com/velomir/auto-shop-scheduler/internal/middleware"
	"github.com/velomir/auto-shop-scheduler/internal/queue"
	"github.com/velomir/auto-shop-scheduler/internal/repository"
	"github.com/velomir/auto-shop-scheduler/internal/router"
)

func main() {
	_ = godotenv.Load(".env") // optional; real env wins over file values
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	// Nil when Redis is unreachable; caching and rate limiting then no-op.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, caching and rate limiting disabled")
	}

	customerRepo := repository.NewCustomerRepo(db)
	vehicleRepo := repository.NewVehicleRepo(db)
	serviceTypeRepo := repository.NewServiceTypeRepo(db)
	technicianRepo := repository.NewTechnicianRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	historyRepo := repository.NewStatusHistoryRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	h := &router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, userRepo, tokenRepo),
		Health:       handler.NewHealthHandler(db),
		Customers:    handler.NewCustomerHandler(customerRepo),
		Vehicles:     handler.NewVehicleHandler(vehicleRepo),
		ServiceTypes: handler.NewServiceTypeHandler(serviceTypeRepo),
		Technicians:  handler.NewTechnicianHandler(technicianRepo),
		Appointments: handler.NewAppointmentHandler(appointmentRepo, vehicleRepo, serviceTypeRepo, technicianRepo, historyRepo, customerRepo),
		Dashboard:    handler.NewDashboardHandler(dashboardRepo),
	}

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e, h)
	router.RegisterAuth(e, h.Auth)
	router.RegisterShop(e, h, cfg.JWTSecret)

	// Background consumer appends booked appointments to logs/booking.log.
	// It reconnects on broker failures and never stops the server.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
