package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/artikel-backend/internal/adapter/postgres"
	nounrepo "github.com/heartmarshall/artikel-backend/internal/adapter/postgres/noun"
	sessionrepo "github.com/heartmarshall/artikel-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/artikel-backend/internal/auth"
	"github.com/heartmarshall/artikel-backend/internal/config"
	"github.com/heartmarshall/artikel-backend/internal/service/dashboard"
	"github.com/heartmarshall/artikel-backend/internal/service/noun"
	"github.com/heartmarshall/artikel-backend/internal/service/practice"
	"github.com/heartmarshall/artikel-backend/internal/transport/middleware"
	"github.com/heartmarshall/artikel-backend/internal/transport/rest"
)

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. On the way out it drains in-flight requests, then abandons
// every live practice session so no question timer outlives the process.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// 1. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()

	// 2. Repositories.
	nouns := nounrepo.New(pool)
	sessions := sessionrepo.New(pool)

	// 3. Services.
	loc, err := dashboard.ParseTimezone(cfg.Dashboard.DefaultTimezone, time.UTC)
	if err != nil {
		return fmt.Errorf("dashboard default timezone: %w", err)
	}

	practiceSvc := practice.NewService(logger, nouns, sessions, clock, nil, practice.Limits{
		DefaultQuestionCount:      cfg.Practice.DefaultQuestionCount,
		DefaultSecondsPerQuestion: cfg.Practice.DefaultSecondsPerQuestion,
		MaxQuestionCount:          cfg.Practice.MaxQuestionCount,
		MaxSecondsPerQuestion:     cfg.Practice.MaxSecondsPerQuestion,
	})
	dashboardSvc := dashboard.NewService(logger, sessions, clock, loc, dashboard.Options{
		TrendDays:      cfg.Dashboard.TrendDays,
		HeatmapMonths:  cfg.Dashboard.HeatmapMonths,
		RecentSessions: cfg.Dashboard.RecentSessions,
	})
	nounSvc := noun.NewService(logger, nouns)

	// 4. HTTP.
	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, clock)
	limiter := middleware.NewMemoryCounterStore(clock,
		cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, practiceSvc, clock, BuildVersion()),
		Practice:  rest.NewPracticeHandler(practiceSvc, logger),
		Dashboard: rest.NewDashboardHandler(dashboardSvc, logger),
		Noun:      rest.NewNounHandler(nounSvc, logger),
	}, middleware.Chain(
		middleware.CORS(cfg.CORS),
		middleware.RateLimit(limiter),
		middleware.Auth(verifier),
	))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go limiter.RunSweeper(sweepCtx, cfg.RateLimit.CleanupInterval)

	return serve(ctx, srv, logger, cfg.Server.ShutdownTimeout, practiceSvc.Shutdown)
}
