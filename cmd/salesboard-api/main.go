// @title         Salesboard API
// @version       0.1.0
// @description   Read only analytics over the retail sales dataset

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesboard/internal/adapters/source"
	"salesboard/internal/core/facts"
	"salesboard/internal/core/version"
	"salesboard/internal/platform/config"
	"salesboard/internal/platform/logger"
	"salesboard/internal/platform/metrics"
	phttp "salesboard/internal/platform/net/http"
	"salesboard/internal/platform/net/middleware"
	"salesboard/internal/platform/store"

	"salesboard/internal/modkit/httpkit"
	"salesboard/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	// .env is optional
	loaded, dotErr := config.LoadDotenv()

	opts := logger.FromEnv()
	if opts.Service == "" {
		opts.Service = version.Service
	}
	logger.Init(opts)
	l := logger.Get()
	if dotErr != nil {
		l.Warn().Err(dotErr).Msg("dotenv load failed")
	} else if len(loaded) > 0 {
		l.Debug().Strs("files", loaded).Msg("dotenv loaded")
	}

	cfg := config.New().Prefix("SALESBOARD_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kind, err := source.ParseKind(cfg.MayString("SOURCE", "csv"))
	if err != nil {
		l.Panic().Err(err).Msg("invalid source")
	}

	// backends are only opened when the source or an explicit url asks for them
	pgURL := cfg.MayString("PG_URL", "")
	chURL := cfg.MayString("CH_URL", "")
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: version.Service,
			Version: version.Info().Version,
			PG: store.PGConfig{
				Enabled:     kind == source.KindPostgres || pgURL != "",
				URL:         pgURL,
				MaxConns:    int32(cfg.MayInt("PG_MAX_CONNS", 4)),
				SlowQueryMs: cfg.MayInt("PG_SLOW_MS", 500),
				LogSQL:      cfg.MayBool("PG_LOG_SQL", false),
			},
			CH: store.CHConfig{
				Enabled:     kind == source.KindClickhouse || chURL != "",
				URL:         chURL,
				DialTimeout: cfg.MayDuration("CH_DIAL_TIMEOUT", 5*time.Second),
			},
		},
		store.WithLogger(*logger.Named("store")),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	src, err := source.Open(source.Config{Kind: kind, Dir: cfg.MayString("DATA_DIR", "./data")}, st)
	if err != nil {
		l.Panic().Err(err).Str("source", string(kind)).Msg("source.Open failed")
	}

	data := facts.NewHandle(src,
		facts.WithLogger(*logger.Named("facts")),
		facts.WithObserver(observeLoad),
	)
	if cfg.MayBool("PRELOAD", true) {
		// a failed warm up is retried by the first request
		if _, err := data.Snapshot(ctx); err != nil {
			l.Warn().Err(err).Msg("dataset preload failed")
		}
	}

	srv := phttp.NewServer(cfg, func(m *chi.Mux) {
		m.Use(middleware.Defaults()...)
	})

	withMetrics := cfg.MayBool("METRICS", true)
	if withMetrics {
		srv.Router().Handle("/metrics", metrics.Handler())
	}

	api.Mount(
		srv.Router(),
		api.Options{
			Config: cfg,
			Store:  st,
			Data:   data,
			Logger: l,
			Stack: httpkit.StackOptions{
				CORS:        middleware.CORSOptions{AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil)},
				RateLimit:   cfg.MayInt("RATE_LIMIT", 0),
				RateWindow:  cfg.MayDuration("RATE_WINDOW", time.Minute),
				Metrics:     withMetrics,
				SlowRequest: cfg.MayDuration("SLOW_REQUEST", time.Second),
			},
			EnableSwagger:  cfg.MayBool("SWAGGER", true),
			EnableProfiler: cfg.MayBool("PROFILER", false),
		},
	)

	l.Info().Str("addr", srv.Addr()).Str("source", string(kind)).Msg("salesboard api starting")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

func observeLoad(s facts.LoadStats) {
	n := 0
	if s.Snapshot != nil {
		n = len(s.Snapshot.Facts)
		m := s.Snapshot.Meta
		metrics.RecordCatalog("categories", len(m.Categories))
		metrics.RecordCatalog("subcategories", len(m.Subcategories))
		metrics.RecordCatalog("countries", len(m.Countries))
		metrics.RecordCatalog("genders", len(m.Genders))
		metrics.RecordCatalog("marital_statuses", len(m.MaritalStatuses))
		metrics.RecordCatalog("colors", len(m.Colors))
		metrics.RecordCatalog("products", len(m.Products))
	}
	metrics.RecordLoad(s.Took, n, s.Err)
}
