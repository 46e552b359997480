package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/stayops/hotel-management-api/internal/application/services"
	"github.com/stayops/hotel-management-api/internal/core/ports"
	customMiddleware "github.com/stayops/hotel-management-api/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type ServerDeps struct {
	AuthService    ports.AuthService
	HotelService   *services.HotelService
	RoomService    *services.RoomService
	BookingService *services.BookingService
	HealthCheckers []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	authSvc        ports.AuthService
	hotelService   *services.HotelService
	roomService    *services.RoomService
	bookingService *services.BookingService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.Validator = NewRequestValidator()

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		authSvc:        deps.AuthService,
		hotelService:   deps.HotelService,
		roomService:    deps.RoomService,
		bookingService: deps.BookingService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.AuthService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
