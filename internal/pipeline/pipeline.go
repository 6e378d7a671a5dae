package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/relabs-tech/inertial_pipeline/internal/imu"
)

// Stats counts what happened to the samples of one run.
type Stats struct {
	Acquired  uint64 `json:"acquired"`
	Converted uint64 `json:"converted"`
	Skipped   uint64 `json:"skipped"`
	Reported  uint64 `json:"reported"`
}

type counters struct {
	acquired, converted, skipped, reported atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Acquired:  c.acquired.Load(),
		Converted: c.converted.Load(),
		Skipped:   c.skipped.Load(),
		Reported:  c.reported.Load(),
	}
}

// Pipeline decodes and reports batches of raw samples. A Pipeline may run
// any number of batches, sequentially or concurrently.
type Pipeline struct {
	cfg      Config
	reporter Reporter
}

// New validates cfg and returns a pipeline that reports to reporter.
func New(cfg Config, reporter Reporter) (*Pipeline, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if reporter == nil {
		return nil, fmt.Errorf("%w: nil reporter", ErrInvalidConfig)
	}
	return &Pipeline{cfg: cfg, reporter: reporter}, nil
}

// run is the state of a single batch.
type run struct {
	id       string
	cfg      Config
	reporter Reporter
	stats    counters
}

// Run drains src through the three stages and returns once all of them have
// terminated. The returned error is the first stage failure: a *SampleError
// for a bad sample under PolicyAbort, a reporter error, or ctx.Err() if ctx
// was cancelled. Stats are returned in every case.
func (p *Pipeline) Run(ctx context.Context, src imu.SampleSource) (Stats, error) {
	r := &run{
		id:       uuid.NewString(),
		cfg:      p.cfg,
		reporter: p.reporter,
	}
	log.Printf("pipeline %s: starting (fractional_bits=%d, channel_capacity=%d, error_policy=%s, normalize=%v)",
		r.id, r.cfg.FractionalBits, r.cfg.ChannelCapacity, r.cfg.ErrorPolicy, r.cfg.Normalize)

	a := make(chan envelope[imu.RawSample], r.cfg.ChannelCapacity)
	b := make(chan envelope[imu.FixedTriplet], r.cfg.ChannelCapacity)

	g, gctx := errgroup.WithContext(ctx)
	stages := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"acquire", func(ctx context.Context) error { return r.acquire(ctx, src, a) }},
		{"convert", func(ctx context.Context) error { return r.convert(ctx, a, b) }},
		{"reconstruct", func(ctx context.Context) error { return r.reconstruct(ctx, b) }},
	}

	done := make([]chan struct{}, len(stages))
	for i, st := range stages {
		done[i] = make(chan struct{})
		g.Go(func() error {
			defer close(done[i])
			return st.fn(gctx)
		})
	}

	for i, st := range stages {
		<-done[i]
		log.Printf("pipeline %s: stage %d (%s) terminated", r.id, i+1, st.name)
	}

	err := g.Wait()
	stats := r.stats.snapshot()
	if err != nil {
		log.Printf("pipeline %s: aborted: %v (%+v)", r.id, err, stats)
		return stats, err
	}
	log.Printf("pipeline %s: concluded (%+v)", r.id, stats)
	return stats, nil
}
