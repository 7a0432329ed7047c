package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	bookingdomain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/geocode"
	"github.com/BruksfildServices01/salon-booking/internal/infra/memory"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/logger"
	"github.com/BruksfildServices01/salon-booking/internal/media"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/ratelimit"
	"github.com/BruksfildServices01/salon-booking/internal/routes"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type stores struct {
	users     user.Repository
	salons    salondomain.Repository
	bookings  bookingdomain.Repository
	auditLogs audit.Store
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	timezone.SetDefault(cfg.Timezone)

	st, err := openStores(cfg, log)
	if err != nil {
		log.Error("failed to open storage", logger.Err(err))
		os.Exit(1)
	}

	// ======================================================
	// INFRA
	// ======================================================
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	dispatcher := audit.NewDispatcher(audit.New(st.auditLogs), log)

	var images media.Store
	if cfg.S3.Enabled() {
		images = media.NewS3Store(cfg.S3)
		log.Info("image uploads enabled", slog.String("bucket", cfg.S3.Bucket))
	}

	limiter := newLimiter(cfg, log)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:    cfg,
		Log:       log,
		Sessions:  session.NewManager(cfg.Session.JWTSecret, cfg.Session.TTL),
		Users:     st.users,
		Salons:    st.salons,
		Bookings:  st.bookings,
		AuditLogs: st.auditLogs,
		Audit:     dispatcher,
		Geocoder:  geocode.NewStatic(),
		Media:     images,
		Limiter:   limiter,
		Metrics:   metrics.New(reg),
		Gatherer:  reg,
		Now:       time.Now,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running",
			slog.String("addr", cfg.Addr()),
			slog.String("env", cfg.Env),
			slog.String("storage", cfg.StorageDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", logger.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", logger.Err(err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("audit queue not drained", logger.Err(err))
	}
}

func openStores(cfg *config.Config, log *slog.Logger) (stores, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Warn("using in-memory storage; data is lost on restart")
		m := memory.New()
		return stores{users: m, salons: m, bookings: m, auditLogs: m}, nil
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return stores{}, err
	}
	return stores{
		users:     repository.NewUserGormRepository(db),
		salons:    repository.NewSalonGormRepository(db),
		bookings:  repository.NewBookingGormRepository(db),
		auditLogs: repository.NewAuditGormRepository(db),
	}, nil
}

// newLimiter falls back to an in-process limiter when Redis is not
// configured or unreachable.
func newLimiter(cfg *config.Config, log *slog.Logger) ratelimit.Limiter {
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := ratelimit.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err == nil {
			return ratelimit.NewRedis(client, cfg.RateLimit.Limit, cfg.RateLimit.Window)
		}
		log.Warn("redis unavailable, using local rate limiter", logger.Err(err))
	}
	return ratelimit.NewLocal(cfg.RateLimit.Limit, cfg.RateLimit.Window)
}
