package routes

import (
	"net/http"
	"time"

	"github.com/velaug24it-bit/serviceswebiste/handlers"
	"github.com/velaug24it-bit/serviceswebiste/middleware"
	"github.com/velaug24it-bit/serviceswebiste/models"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/register/customer", hb.RegisterCustomerHandler)
		api.POST("/register/provider", hb.RegisterProviderHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", middleware.JWTAuthMiddleware(hb.Tokens, hb.Sessions, true), hb.LogoutHandler)
		api.GET("/user/current", middleware.JWTAuthMiddleware(hb.Tokens, hb.Sessions, false), hb.CurrentUserHandler)
	}
}

// RegisterProviderRoutes registers catalog endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/providers", hb.GetProvidersHandler)
	r.GET("/providers/:id", hb.GetProviderByIDHandler)
	r.GET("/categories", hb.GetCategoriesHandler)
	r.GET("/locations", hb.GetLocationsHandler)

	api := r.Group("/api/provider")
	{
		api.GET("/dashboard/:id", hb.DashboardHandler)

		// Profile changes require a provider session.
		protected := api.Group("")
		protected.Use(middleware.RequireUserType(hb.Tokens, hb.Sessions, models.UserTypeProvider))
		protected.PUT("/update/:id", hb.UpdateProviderHandler)
	}
}

// RegisterBookingRoutes registers booking, tracking and simulator endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/book", hb.BookServiceHandler)
	r.GET("/my-bookings", hb.MyBookingsHandler)
	r.GET("/track/:bookingId", hb.TrackHandler)
	r.GET("/track/by-tracking-id/:trackingId", hb.TrackByTrackingIDHandler)
	r.POST("/update-booking-status", hb.AdvanceStatusesHandler)
	r.POST("/reschedule/:bookingId", hb.RescheduleHandler)
	r.POST("/cancel/:bookingId", hb.CancelHandler)
	r.POST("/clear-bookings", hb.ClearBookingsHandler)
	r.GET("/api/stats", hb.StatsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Message: "Resource not found"})
	})
}
