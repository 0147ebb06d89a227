package facts

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	perr "salesboard/internal/platform/errors"
	"salesboard/internal/platform/logger"
)

// Source supplies the four normalized tables as typed rows
type Source interface {
	Sales(ctx context.Context) ([]Sale, error)
	Products(ctx context.Context) ([]Product, error)
	Customers(ctx context.Context) ([]Customer, error)
	Dates(ctx context.Context) ([]DateRow, error)
}

// Snapshot is an immutable joined dataset shared by every reader
type Snapshot struct {
	ID       uuid.UUID
	Facts    []Fact
	Meta     Meta
	Calendar []DateRow
	LoadedAt time.Time
}

// CalendarBounds returns the first and last date of the date dimension in source order
func (s *Snapshot) CalendarBounds() (first, last string) {
	if s == nil || len(s.Calendar) == 0 {
		return "", ""
	}
	return s.Calendar[0].Date, s.Calendar[len(s.Calendar)-1].Date
}

// Build joins already loaded tables into a new Snapshot
func Build(t Tables) *Snapshot {
	rows, meta := Join(t.Sales, t.Products, t.Customers)
	return &Snapshot{
		ID:       uuid.New(),
		Facts:    rows,
		Meta:     meta,
		Calendar: t.Dates,
		LoadedAt: time.Now().UTC(),
	}
}

// Load fetches the four tables concurrently and joins them
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	t, err := ReadTables(ctx, src)
	if err != nil {
		return nil, err
	}
	return Build(t), nil
}

// ReadTables fetches the four tables concurrently without joining them
// the first table to fail cancels the others
func ReadTables(ctx context.Context, src Source) (Tables, error) {
	if src == nil {
		return Tables{}, perr.Newf(perr.ErrorCodeUnavailable, "facts: no source configured")
	}

	var t Tables
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		t.Sales, err = src.Sales(gctx)
		return wrapLoad("sales", err)
	})
	g.Go(func() (err error) {
		t.Products, err = src.Products(gctx)
		return wrapLoad("products", err)
	})
	g.Go(func() (err error) {
		t.Customers, err = src.Customers(gctx)
		return wrapLoad("customers", err)
	})
	g.Go(func() (err error) {
		t.Dates, err = src.Dates(gctx)
		return wrapLoad("dates", err)
	})
	if err := g.Wait(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

func wrapLoad(table string, err error) error {
	if err == nil {
		return nil
	}
	return perr.WithOp(perr.Wrapf(err, perr.ErrorCodeUnavailable, "load %s", table), "facts.Load")
}

// LoadStats describes one load attempt
type LoadStats struct {
	Snapshot *Snapshot
	Took     time.Duration
	Err      error
}

// Handle is a lazily loaded Snapshot accessor
// the first successful load is kept for the life of the Handle; failed loads are retried by the next caller
type Handle struct {
	src     Source
	log     logger.Logger
	observe func(LoadStats)

	mu    sync.Mutex
	snap  *Snapshot
	ready atomic.Bool
}

// HandleOption configures a Handle
type HandleOption func(*Handle)

// WithLogger sets the logger used to report loads
func WithLogger(l logger.Logger) HandleOption { return func(h *Handle) { h.log = l } }

// WithObserver registers a callback invoked after every load attempt
func WithObserver(fn func(LoadStats)) HandleOption { return func(h *Handle) { h.observe = fn } }

// NewHandle returns a Handle that loads from src on first use
func NewHandle(src Source, opts ...HandleOption) *Handle {
	h := &Handle{src: src, log: *logger.Named("facts")}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Preloaded returns a Handle already holding snap
func Preloaded(snap *Snapshot) *Handle {
	h := &Handle{snap: snap, log: *logger.Named("facts")}
	h.ready.Store(snap != nil)
	return h
}

// Snapshot returns the cached snapshot, loading it on first call
// the load ignores cancellation of ctx so concurrent waiters never see a half finished join
func (h *Handle) Snapshot(ctx context.Context) (*Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.snap != nil {
		return h.snap, nil
	}

	start := time.Now()
	snap, err := Load(context.WithoutCancel(ctx), h.src)
	stats := LoadStats{Snapshot: snap, Took: time.Since(start), Err: err}
	if h.observe != nil {
		h.observe(stats)
	}
	if err != nil {
		h.log.Error().Err(err).Dur("took", stats.Took).Msg("dataset load failed")
		return nil, err
	}

	h.log.Info().
		Str("snapshot_id", snap.ID.String()).
		Int("facts", len(snap.Facts)).
		Int("products", len(snap.Meta.Products)).
		Int("countries", len(snap.Meta.Countries)).
		Int("calendar_days", len(snap.Calendar)).
		Dur("took", stats.Took).
		Msg("dataset loaded")

	h.snap = snap
	h.ready.Store(true)
	return snap, nil
}

// Loaded reports whether a snapshot is cached, without waiting on a load in flight
func (h *Handle) Loaded() bool { return h.ready.Load() }
