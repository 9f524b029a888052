// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hogicar/internal/http/handlers"
	"hogicar/internal/http/middleware"
	"hogicar/internal/modules/booking"
	"hogicar/internal/modules/car"
	"hogicar/internal/modules/location"
)

func NewRouter(
	bookingService *booking.Service,
	locationService *location.Service,
	carService *car.Service,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(log), middleware.Recovery(log))

	bookingHandler := handlers.NewBookingHandler(bookingService)
	r.POST("/api/bookings", bookingHandler.Create)
	r.GET("/api/bookings/:id", bookingHandler.GetByID)
	r.GET("/api/bookings/ref/:ref", bookingHandler.GetByRef)

	locationHandler := handlers.NewLocationHandler(locationService)
	r.GET("/api/locations", locationHandler.Search)
	r.GET("/api/locations/suggest", locationHandler.Suggest)

	carHandler := handlers.NewCarHandler(carService)
	r.GET("/api/cars", carHandler.Search)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
