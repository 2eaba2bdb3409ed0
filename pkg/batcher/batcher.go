// Package batcher accumulates records and writes them out in rate-limited
// batches, by size or by interval, whichever trips first.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Sink receives a full batch. The batch slice is reused between calls and
// must not be retained. A non-nil error drops the records; retry policy
// belongs to the sink.
type Sink[T any] func(context.Context, []T) error

// Config bounds the batching behavior. Zero fields fall back to defaults.
type Config struct {
	Size     int
	Interval time.Duration
	RPS      int
}

const (
	defaultSize     = 100
	defaultInterval = time.Second
	defaultRPS      = 10
)

func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = defaultSize
	}
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}
	if c.RPS <= 0 {
		c.RPS = defaultRPS
	}
	return c
}

// Batcher collects records from Add calls and hands them to the sink once
// Size records are pending or Interval elapses.
type Batcher[T any] struct {
	logger *zap.Logger
	sink   Sink[T]
	cfg    Config
	limit  ratelimit.Limiter

	incoming chan []T
	done     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// New constructs a Batcher. Records queued before Start sit in the buffer
// until the loop runs.
func New[T any](logger *zap.Logger, sink Sink[T], cfg Config) *Batcher[T] {
	cfg = cfg.withDefaults()
	return &Batcher[T]{
		logger:   logger,
		sink:     sink,
		cfg:      cfg,
		limit:    ratelimit.New(cfg.RPS),
		incoming: make(chan []T, cfg.Size),
		done:     make(chan struct{}),
	}
}

// Start launches the background write loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.loop(ctx)
}

// Stop drains pending records, writes them, and waits for the loop to
// exit. Safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.once.Do(func() { close(b.done) })
	b.wg.Wait()
}

// Add queues records for the next batch. It fails once the batcher is
// stopped or the context is canceled.
func (b *Batcher[T]) Add(ctx context.Context, records ...T) error {
	if len(records) == 0 {
		return nil
	}
	select {
	case <-b.done:
		return context.Canceled
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return context.Canceled
	case b.incoming <- records:
		return nil
	}
}

func (b *Batcher[T]) loop(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	pending := make([]T, 0, b.cfg.Size)

	write := func() {
		if len(pending) == 0 {
			return
		}
		b.limit.Take()
		if err := b.sink(ctx, pending); err != nil {
			b.logger.Error("batch write failed",
				zap.Int("records", len(pending)),
				zap.Error(err),
			)
		} else {
			b.logger.Debug("batch written", zap.Int("records", len(pending)))
		}
		pending = pending[:0]
	}

	drain := func() {
		for {
			select {
			case records := <-b.incoming:
				pending = append(pending, records...)
			default:
				write()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-b.done:
			drain()
			return
		case records := <-b.incoming:
			pending = append(pending, records...)
			if len(pending) >= b.cfg.Size {
				write()
			}
		case <-ticker.C:
			write()
		}
	}
}
