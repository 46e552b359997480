package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")
	auth := api.Group("/auth")
	auth.POST("/signup", s.signup)
	auth.POST("/login", s.login)

	protected := api.Group("")
	protected.Use(s.middleware.JWT.RequireJWT())

	hotels := protected.Group("/hotels")
	hotels.GET("", s.listHotels)
	hotels.POST("", s.createHotel)
	hotels.PUT("/:id", s.updateHotel)
	hotels.DELETE("/:id", s.deleteHotel)

	rooms := protected.Group("/rooms")
	rooms.GET("", s.listRooms)
	rooms.POST("", s.createRoom)
	rooms.PUT("/:id", s.updateRoom)
	rooms.DELETE("/:id", s.deleteRoom)

	bookings := protected.Group("/bookings")
	bookings.GET("", s.listBookings)
	bookings.POST("", s.createBooking)
	bookings.PUT("/:id", s.updateBooking)
	bookings.DELETE("/:id", s.deleteBooking)
}
