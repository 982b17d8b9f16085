package app

import (
	"BE-HOTEL-ADMIN/app/handlers"
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	roomHandler *handlers.RoomHandler,
	userHandler *handlers.UserHandler,
	bookingHandler *handlers.BookingHandler,
	dashboardHandler *handlers.DashboardHandler,
	authMiddleware echo.MiddlewareFunc,
	adminMiddleware echo.MiddlewareFunc,
) {
	// Auth routes
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.RegisterUser)
	e.POST("/refresh", authHandler.Refresh)
	e.POST("/password/reset_request", authHandler.PasswordReset)
	e.PUT("/password/reset/:token", authHandler.PasswordResetId)

	authGroup := e.Group("")
	authGroup.Use(authMiddleware)
	authGroup.GET("/me", authHandler.Me)
	authGroup.POST("/password/change", authHandler.ChangePassword)

	// Dashboard routes
	authGroup.GET("/dashboard", dashboardHandler.GetDashboard)

	api := e.Group("/api")
	api.Use(authMiddleware)

	// Room routes
	api.GET("/rooms", roomHandler.GetRooms)
	api.POST("/rooms", roomHandler.CreateRoom)
	api.GET("/rooms/:id", roomHandler.GetRoomByID)
	api.PUT("/rooms/:id", roomHandler.UpdateRoom)
	api.DELETE("/rooms/:id", roomHandler.DeleteRoom)
	api.POST("/rooms/:id/approve", roomHandler.ApproveRoom, adminMiddleware)
	api.POST("/rooms/:id/reject", roomHandler.RejectRoom, adminMiddleware)

	// User routes
	api.GET("/users", userHandler.GetUsers)
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users/:id", userHandler.GetUserByID)
	api.PUT("/users/:id", userHandler.UpdateUserByID)
	api.DELETE("/users/:id", userHandler.DeleteUser)

	// Transaction routes, also served as /api/bookings
	for _, prefix := range []string{"/transactions", "/bookings"} {
		api.GET(prefix, bookingHandler.GetTransactions)
		api.POST(prefix, bookingHandler.CreateTransaction)
		api.GET(prefix+"/:id", bookingHandler.GetTransactionByID)
		api.PUT(prefix+"/:id", bookingHandler.UpdateTransaction)
		api.DELETE(prefix+"/:id", bookingHandler.DeleteTransaction)
	}
}
