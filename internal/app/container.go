package app

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amicinails/salon-booking-backend/internal/api"
	"github.com/amicinails/salon-booking-backend/internal/auth"
	"github.com/amicinails/salon-booking-backend/internal/availability"
	"github.com/amicinails/salon-booking-backend/internal/booking"
	"github.com/amicinails/salon-booking-backend/internal/catalog"
	"github.com/amicinails/salon-booking-backend/internal/clock"
	"github.com/amicinails/salon-booking-backend/internal/config"
	"github.com/amicinails/salon-booking-backend/internal/notify"
	"github.com/amicinails/salon-booking-backend/internal/schedule"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine

	closers []func() error
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool) (*Container, error) {
	c := &Container{}

	// Init Components
	clk := clock.New()
	cat := catalog.Default()
	hasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)
	verifier := auth.NewStaffVerifier(cfg.StaffUsername, cfg.StaffPasswordHash, hasher)

	// Schedule Module (date and slot locks)
	scheduleRepo := schedule.NewPgxRepository(pool)
	scheduleService := schedule.NewService(scheduleRepo)

	// Notification sinks, assembled from whatever transports are configured.
	var sinks []notify.Sink
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegramSink(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, tg)
	}
	if cfg.AMQPURL != "" {
		bus, err := notify.NewAMQPSink(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, bus)
		c.closers = append(c.closers, bus.Close)
	}
	if len(sinks) == 0 {
		sinks = append(sinks, notify.LogSink{})
	}

	var mailer notify.Mailer
	if cfg.ResendAPIKey != "" && cfg.ResendFromEmail != "" {
		mailer = notify.NewResendMailer(cfg.ResendAPIKey, cfg.ResendFromEmail)
	}

	dispatcher := notify.NewDispatcher(sinks, mailer, 10*time.Second)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(pool)
	bookingService := booking.NewService(bookingRepo, cat, clk, dispatcher)

	// Availability Module reads booking counts and slot locks.
	availabilityService := availability.NewService(bookingRepo, scheduleService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		BookingService:      bookingService,
		ScheduleService:     scheduleService,
		AvailabilityService: availabilityService,
		Catalog:             cat,
		StaffVerifier:       verifier,
		JWTManager:          jwtManager,
	})
	c.Router = router

	return c, nil
}

// Close releases resources held by long-lived components.
func (c *Container) Close() {
	for _, fn := range c.closers {
		if err := fn(); err != nil {
			log.Printf("error closing component: %v", err)
		}
	}
}
