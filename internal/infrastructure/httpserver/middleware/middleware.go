package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/stayops/hotel-management-api/internal/core/ports"
)

// MiddlewareCollection holds all middleware instances
type MiddlewareCollection struct {
	JWT     *JWTMiddleware
	Logging *LoggingMiddleware
	Metrics *MetricsMiddleware
}

// NewMiddlewareCollection creates a new collection of all middleware
func NewMiddlewareCollection(
	authService ports.AuthService,
	logger *logrus.Logger,
	requestsTotal *prometheus.CounterVec,
	requestDuration *prometheus.HistogramVec,
) *MiddlewareCollection {
	return &MiddlewareCollection{
		JWT:     NewJWTMiddleware(authService, logger),
		Logging: NewLoggingMiddleware(logger),
		Metrics: NewMetricsMiddleware(requestsTotal, requestDuration),
	}
}
