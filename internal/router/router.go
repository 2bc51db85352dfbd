package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/kipkoech-dev/pitch-hire/internal/handler"    // import the handlers that implement business logic
	"github.com/kipkoech-dev/pitch-hire/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/kipkoech-dev/pitch-hire/internal/model"      // role names for the admin-only group
	"github.com/kipkoech-dev/pitch-hire/internal/repository" // deny-list consulted by the JWT middleware
)

// Handlers collects the resource handlers the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	Users    *handler.UserHandler
	Pitches  *handler.PitchHandler
	Bookings *handler.BookingHandler
	Ratings  *handler.RatingHandler
}

// RegisterRoutes registers the full API surface on the provided Echo
// instance.  The paths deliberately mirror the published contract,
// including the /get_pitches and /get_bookings listing routes.
//
// Three tiers of access exist: open routes (registration, login, banner,
// health check), authenticated routes behind the JWT middleware, and the
// admin-only pitch mutations which additionally pass the role gate.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, deny *repository.DenyList) {
	// Open endpoints.  Registration and login are the only writes that do
	// not require a token.
	e.GET("/", handler.Index)
	e.GET("/healthz", handler.Health)
	e.POST("/login", h.Auth.Login)
	e.POST("/users", h.Users.Register)

	// Authenticated endpoints.  The JWT middleware validates the bearer
	// token, consults the deny-list and injects the identity claims.
	auth := e.Group("", middleware.JWTAuth(jwtSecret, deny))
	auth.GET("/current_user", h.Auth.CurrentUser)
	auth.DELETE("/logout", h.Auth.Logout)

	auth.GET("/users/:id", h.Users.GetUser)
	auth.PUT("/users", h.Users.UpdateProfile)
	auth.DELETE("/users/:id", h.Users.DeleteUser)

	auth.GET("/get_pitches", h.Pitches.GetPitches)

	auth.POST("/bookings", h.Bookings.CreateBooking)
	auth.GET("/get_bookings", h.Bookings.GetBookings)
	auth.PUT("/bookings/:id", h.Bookings.UpdateBooking)
	auth.DELETE("/bookings/:id", h.Bookings.DeleteBooking)

	auth.POST("/ratings", h.Ratings.CreateRating)
	auth.PUT("/ratings/:id", h.Ratings.UpdateRating)
	auth.DELETE("/ratings/:id", h.Ratings.DeleteRating)
	auth.GET("/ratings_list", h.Ratings.RatingsList)

	// Admin-only pitch mutations.  Create, update and delete share one
	// authorization policy enforced by the role middleware.
	admin := e.Group("",
		middleware.JWTAuth(jwtSecret, deny),
		middleware.RequireRole(model.RoleAdmin),
	)
	admin.POST("/pitches", h.Pitches.CreatePitch)
	admin.PUT("/pitches/:id", h.Pitches.UpdatePitch)
	admin.DELETE("/pitches/:id", h.Pitches.DeletePitch)
}
