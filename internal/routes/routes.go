package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	bookingdomain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/geocode"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/media"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/ratelimit"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	ucAuth "github.com/BruksfildServices01/salon-booking/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

// Deps is everything the router needs. Media may be nil; Gatherer nil
// leaves /metrics unregistered.
type Deps struct {
	Config   *config.Config
	Log      *slog.Logger
	Sessions *session.Manager

	Users     user.Repository
	Salons    salondomain.Repository
	Bookings  bookingdomain.Repository
	AuditLogs audit.Store

	Audit    *audit.Dispatcher
	Geocoder geocode.Geocoder
	Media    media.Store
	Limiter  ratelimit.Limiter
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Now      func() time.Time
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(d.Metrics),
		middleware.CORSMiddleware(d.Config.CORS.Origins),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(d.Users, d.Sessions)
	loginUC := ucAuth.NewLogin(d.Users, d.Sessions)

	createSalonUC := ucSalon.NewCreateSalon(d.Salons, d.Geocoder, d.Audit, d.Log)
	listSalonsUC := ucSalon.NewListSalons(d.Salons)
	nearbyUC := ucSalon.NewSearchNearby(d.Salons)
	mySalonsUC := ucSalon.NewListMySalons(d.Salons)
	getSalonUC := ucSalon.NewGetSalon(d.Salons)
	updateSalonUC := ucSalon.NewUpdateSalon(d.Salons, d.Geocoder, d.Audit, d.Log)
	reactivateUC := ucSalon.NewReactivateSalon(d.Salons, d.Audit)
	deleteSalonUC := ucSalon.NewDeleteSalon(d.Salons, d.Audit)
	uploadUC := ucSalon.NewUploadSalonImage(d.Salons, d.Media, d.Audit)
	auditLogsUC := ucSalon.NewListSalonAuditLogs(d.Salons, d.AuditLogs)

	createBookingUC := ucBooking.NewCreateBooking(d.Bookings, d.Audit, d.Metrics, d.Now)
	transitionUC := ucBooking.NewTransitionBooking(d.Bookings, d.Audit, d.Metrics, d.Now)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		registerUC,
		loginUC,
		d.Sessions,
		d.Config.Session.CookieSecure,
	)

	salonHandler := handlers.NewSalonHandler(
		createSalonUC,
		listSalonsUC,
		nearbyUC,
		mySalonsUC,
		getSalonUC,
		updateSalonUC,
		reactivateUC,
		deleteSalonUC,
		uploadUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		ucBooking.NewListMyBookings(d.Bookings),
		ucBooking.NewListSalonBookings(d.Bookings),
		ucBooking.NewGetBooking(d.Bookings),
		transitionUC,
		ucBooking.NewCancelBooking(transitionUC),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogsUC)

	auth := middleware.AuthMiddleware(d.Sessions)
	ownerOnly := middleware.RequireRole(models.RoleOwner)

	// ======================================================
	// INFRA
	// ======================================================
	health := func(c *gin.Context) {
		httpresp.OK(c, "Server is running!", gin.H{"status": "ok"})
	}
	r.GET("/health", health)

	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", health)

		// ------------------------------
		// USERS / AUTH
		// ------------------------------
		users := api.Group("/users")
		{
			throttled := middleware.RateLimit(d.Limiter, "auth", d.Log)
			users.POST("/register", throttled, authHandler.Register)
			users.POST("/login", throttled, authHandler.Login)
			users.POST("/logout", authHandler.Logout)
		}

		api.GET("/auth/me", auth, authHandler.Me)

		// ------------------------------
		// SALONS
		// ------------------------------
		salons := api.Group("/salons")
		{
			salons.GET("", salonHandler.List)
			salons.POST("/search/nearby", salonHandler.Nearby)
			salons.GET("/owner/my-salons", auth, ownerOnly, salonHandler.Mine)
			salons.GET("/:id", salonHandler.Get)

			salons.POST("", auth, ownerOnly, salonHandler.Create)
			salons.PUT("/:id", auth, salonHandler.Update)
			salons.DELETE("/:id", auth, salonHandler.Delete)
			salons.PUT("/:id/reactivate", auth, salonHandler.Reactivate)
			salons.POST("/:id/images", auth, salonHandler.UploadImage)
			salons.GET("/:id/audit-logs", auth, auditLogsHandler.List)
		}

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		bookings := api.Group("/bookings", auth)
		{
			bookings.POST("/create", bookingHandler.Create)
			bookings.GET("/my-bookings", bookingHandler.Mine)
			bookings.GET("/salon/:salonId", bookingHandler.ForSalon)
			bookings.GET("/:id", bookingHandler.Get)
			bookings.PUT("/:id/status", bookingHandler.UpdateStatus)
			bookings.PUT("/:id/cancel", bookingHandler.Cancel)
		}
	}
}
