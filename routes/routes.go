package routes

import (
	"net/http"
	"time"

	"rihla/handlers"
	"rihla/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the routes are wired from.
type HandlerBundle struct {
	Service        *handlers.ServiceHandler
	Booking        *handlers.BookingHandler
	Recommendation *handlers.RecommendationHandler
}

// RegisterServiceRoutes registers catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Service.ListServices)
		api.GET("/:slug", hb.Service.GetServiceBySlug)
		api.GET("/:slug/form", hb.Service.GetServiceForm)
	}
}

// RegisterBookingRoutes sets up the submission pipeline endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.SubmitBooking)
		api.POST("/lookup", hb.Booking.LookupBooking)
		api.POST("/cancel", hb.Booking.CancelBooking)
	}
}

// RegisterRecommendationRoutes registers the resolver endpoint. The group is
// rate limited: each call costs one provider invocation.
func RegisterRecommendationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/recommendations")
	{
		api.Use(middleware.RateLimitMiddleware())
		api.POST("", hb.Recommendation.HandleRecommend)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Rihla"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRecommendationRoutes(r, hb)
	RegisterHealthRoute(r)
}
