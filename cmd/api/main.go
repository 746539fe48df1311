package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gymdesk/internal/config"
	"gymdesk/internal/database"
	"gymdesk/internal/middleware"
	"gymdesk/internal/modules/auth"
	"gymdesk/internal/modules/booking"
	"gymdesk/internal/modules/equipment"
	"gymdesk/internal/modules/members"
	"gymdesk/internal/modules/payments"
	"gymdesk/internal/modules/schedule"
	jwtsvc "gymdesk/internal/pkg/jwt"
	"gymdesk/internal/pkg/logger"
	"gymdesk/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.New(cfg.AppEnv)
	defer func() { _ = logg.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("database connect failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logg.Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := schedule.NewHub(logg)
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	membersService := members.NewService(clientRepo)
	membersHandler := members.NewHandler(membersService)

	equipmentService := equipment.NewService(equipmentRepo)
	equipmentHandler := equipment.NewHandler(equipmentService)

	bookingService := booking.NewService(bookingRepo, equipmentRepo, hub, cfg.Booking)
	bookingHandler := booking.NewHandler(bookingService)

	paymentsService := payments.NewService(paymentRepo, clientRepo, cfg.MonthlyFee)
	paymentsHandler := payments.NewHandler(paymentsService)

	scheduleHandler := schedule.NewHandler(hub, j, logg)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logg))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		scheduleHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			membersHandler.RegisterRoutes(protected)
			equipmentHandler.RegisterRoutes(protected)
			paymentsHandler.RegisterRoutes(protected)
		}
	}

	logg.Info("listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logg.Fatal("server stopped", zap.Error(err))
	}
}
