package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/drivelane/dealership/internal/handler" // import the handlers that implement the endpoint contract
)

// RegisterRoutes registers the health check on the provided Echo instance.
// This endpoint can be used by load balancers or monitoring systems to
// verify that the service is up and running.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterExternal registers the public dealership endpoints.  The whole
// surface is anonymous; the supplied middleware (rate limiting) is applied
// to the group as a whole.
func RegisterExternal(e *echo.Echo, h *handler.ExternalHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/external", mw...)
	// Paginated, filtered catalog listing
	g.GET("/vehicle", h.ListVehicles)
	// Full vehicle detail with its image gallery
	g.GET("/vehicle/:id", h.GetVehicle)
	// Contact-form inquiry about a specific vehicle
	g.POST("/contact-form", h.CreateContactForm)
}
