// Command salesboard-seed copies the csv dataset into postgres and/or clickhouse
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesboard/internal/adapters/source/chsource"
	"salesboard/internal/adapters/source/csvsource"
	"salesboard/internal/adapters/source/pgsource"
	"salesboard/internal/core/facts"
	"salesboard/internal/core/version"
	"salesboard/internal/platform/config"
	"salesboard/internal/platform/logger"
	"salesboard/internal/platform/store"
)

func main() {
	if _, err := config.LoadDotenv(); err != nil {
		logger.Get().Warn().Err(err).Msg("dotenv load failed")
	}
	l := logger.Named("seed")
	cfg := config.New().Prefix("SALESBOARD_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgURL := cfg.MayString("PG_URL", "")
	chURL := cfg.MayString("CH_URL", "")
	if pgURL == "" && chURL == "" {
		l.Fatal().Msg("nothing to seed: set SALESBOARD_PG_URL and/or SALESBOARD_CH_URL")
	}

	dir := cfg.MayString("DATA_DIR", "./data")
	src := csvsource.New(dir)
	if err := src.Check(); err != nil {
		l.Fatal().Err(err).Str("dir", dir).Msg("csv dataset not readable")
	}

	start := time.Now()
	tables, err := facts.ReadTables(ctx, src)
	if err != nil {
		l.Fatal().Err(err).Msg("read csv dataset")
	}
	l.Info().
		Int("sales", len(tables.Sales)).
		Int("products", len(tables.Products)).
		Int("customers", len(tables.Customers)).
		Int("dates", len(tables.Dates)).
		Dur("took", time.Since(start)).
		Msg("csv dataset read")

	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "salesboard-seed",
			Version: version.Info().Version,
			PG: store.PGConfig{
				Enabled:     pgURL != "",
				URL:         pgURL,
				MaxConns:    int32(cfg.MayInt("PG_MAX_CONNS", 2)),
				SlowQueryMs: cfg.MayInt("PG_SLOW_MS", 2000),
			},
			CH: store.CHConfig{
				Enabled:     chURL != "",
				URL:         chURL,
				DialTimeout: cfg.MayDuration("CH_DIAL_TIMEOUT", 5*time.Second),
			},
		},
		store.WithLogger(*logger.Named("store")),
	)
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if st.PG != nil {
		counts, err := pgsource.Seed(ctx, st.PG, tables)
		if err != nil {
			l.Panic().Err(err).Msg("seed postgres")
		}
		l.Info().Interface("rows", counts).Msg("postgres seeded")
	}
	if st.CH != nil {
		counts, err := chsource.Seed(ctx, st.CH, tables)
		if err != nil {
			l.Panic().Err(err).Msg("seed clickhouse")
		}
		l.Info().Interface("rows", counts).Msg("clickhouse seeded")
	}
}
