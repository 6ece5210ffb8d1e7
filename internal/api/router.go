package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/amicinails/salon-booking-backend/internal/auth"
	authHttp "github.com/amicinails/salon-booking-backend/internal/auth/http"
	"github.com/amicinails/salon-booking-backend/internal/availability"
	availabilityHttp "github.com/amicinails/salon-booking-backend/internal/availability/http"
	"github.com/amicinails/salon-booking-backend/internal/booking"
	bookingHttp "github.com/amicinails/salon-booking-backend/internal/booking/http"
	"github.com/amicinails/salon-booking-backend/internal/catalog"
	catalogHttp "github.com/amicinails/salon-booking-backend/internal/catalog/http"
	"github.com/amicinails/salon-booking-backend/internal/schedule"
	scheduleHttp "github.com/amicinails/salon-booking-backend/internal/schedule/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	BookingService      booking.Service
	ScheduleService     schedule.Service
	AvailabilityService availability.Service
	Catalog             *catalog.Catalog
	StaffVerifier       *auth.StaffVerifier
	JWTManager          *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // local frontend
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// staffMiddleware: Validates if the request carries a valid staff JWT.
	staffMiddleware := auth.StaffRequired(cfg.JWTManager)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := authHttp.NewHandler(cfg.StaffVerifier, cfg.JWTManager)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService)
	catalogHandler := catalogHttp.NewHandler(cfg.Catalog)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		authHttp.RegisterRoutes(v1, authHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler, staffMiddleware)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler, staffMiddleware)
		catalogHttp.RegisterRoutes(v1, catalogHandler)
	}

	return r
}
