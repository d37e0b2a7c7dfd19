package routes

import (
	"net/http"
	"time"

	"cardoctor/handlers"
	"cardoctor/middleware"
	"cardoctor/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers token issue and logout endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.IssueTokenHandler)
	r.POST("/logout", hb.LogoutHandler)
}

// RegisterServiceRoutes registers the public service catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/services")
	{
		api.GET("", hb.ListServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints. All of them require a
// session.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/bookings")
	{
		bookingGroup.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		bookingGroup.GET("", hb.ListBookingsHandler)
		bookingGroup.POST("", hb.CreateBookingHandler)
		bookingGroup.PATCH("/:id", hb.UpdateBookingStatusHandler)
		bookingGroup.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterHealthRoute registers the liveness banner and health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "car doctor server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// CORS allows the web client origins to call the API with credentials.
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	r.Use(CORS(origins))

	RegisterSessionRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
