package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"psicocitas/handlers"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Site    *handlers.SiteHandler
}

// RegisterBookingRoutes sets up the form-intake endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/booking", hb.Booking.Submit)
		api.GET("/whatsapp-link", hb.Site.WhatsAppLink)
	}
}

// RegisterSiteRoutes serves robots.txt and sitemap.xml for crawlers.
func RegisterSiteRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/robots.txt", hb.Site.Robots)
	r.GET("/sitemap.xml", hb.Site.Sitemap)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Accept", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterSiteRoutes(r, hb)
	RegisterHealthRoute(r)
}
