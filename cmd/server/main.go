package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/stayops/hotel-management-api/configs"
	"github.com/stayops/hotel-management-api/internal/application/services"
	"github.com/stayops/hotel-management-api/internal/core/domain/booking"
	"github.com/stayops/hotel-management-api/internal/core/domain/hotel"
	"github.com/stayops/hotel-management-api/internal/core/domain/room"
	"github.com/stayops/hotel-management-api/internal/core/ports"
	"github.com/stayops/hotel-management-api/internal/infrastructure/db"
	"github.com/stayops/hotel-management-api/internal/infrastructure/health"
	"github.com/stayops/hotel-management-api/internal/infrastructure/httpserver"
	"github.com/stayops/hotel-management-api/internal/infrastructure/redis"
	"github.com/stayops/hotel-management-api/internal/infrastructure/repositories"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting hotel management API...")

	// Initialize database (apply pool settings from config)
	database, err := db.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	// Initialize Redis client
	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	logger.Info("Connected to Redis successfully")

	redisCache := redis.NewRedisCache(redisClient, cfg.Cache.KeyPrefix)

	// Repositories
	userRepo := repositories.NewUserRepository(database, logger)
	hotelRepo := repositories.NewHotelRepository(database, logger)
	roomRepo := repositories.NewRoomRepository(database, logger)
	bookingRepo := repositories.NewBookingRepository(database, logger)

	// Cache-aside orchestrators, one per entity kind with its own TTL
	hotelCache := services.NewResourceCache[hotel.Hotel](services.KindHotels, cfg.Cache.HotelTTL, redisCache, hotelRepo, logger)
	roomCache := services.NewResourceCache[room.Room](services.KindRooms, cfg.Cache.RoomTTL, redisCache, roomRepo, logger)
	bookingCache := services.NewResourceCache[booking.Booking](services.KindBookings, cfg.Cache.BookingTTL, redisCache, bookingRepo, logger)

	// Services
	authService := services.NewAuthService(userRepo, &cfg.JWT, logger)
	hotelService := services.NewHotelService(hotelCache)
	roomService := services.NewRoomService(roomCache)
	bookingService := services.NewBookingService(bookingCache)

	hcSlice := []ports.HealthChecker{health.NewDBHealthChecker(database), health.NewRedisHealthChecker(redisClient)}

	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	deps := httpserver.ServerDeps{
		AuthService:    authService,
		HotelService:   hotelService,
		RoomService:    roomService,
		BookingService: bookingService,
		HealthCheckers: hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
