package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/relabs-tech/inertial_pipeline/internal/imu"
	"github.com/relabs-tech/inertial_pipeline/internal/orientation"
)

// acquire is stage 1. It drains src in order and ends the stream with a
// single sentinel once src is exhausted.
func (r *run) acquire(ctx context.Context, src imu.SampleSource, out chan<- envelope[imu.RawSample]) error {
	for seq := 0; ; seq++ {
		s, ok := src.TryPop()
		if !ok {
			log.Printf("pipeline %s: acquire: source exhausted after %d samples", r.id, seq)
			return send(ctx, out, endOfStream[imu.RawSample]())
		}
		if err := send(ctx, out, present(seq, s)); err != nil {
			return err
		}
		r.stats.acquired.Add(1)
	}
}

// convert is stage 2. It decodes each raw sample into a fixed-point
// triplet and forwards the sentinel when it sees it.
func (r *run) convert(ctx context.Context, in <-chan envelope[imu.RawSample], out chan<- envelope[imu.FixedTriplet]) error {
	for {
		e, err := recv(ctx, in)
		if err != nil {
			return err
		}
		if e.eos {
			return send(ctx, out, endOfStream[imu.FixedTriplet]())
		}

		t, err := imu.Decode(e.value, r.cfg.FractionalBits)
		if err != nil {
			serr := &SampleError{Seq: e.seq, Err: err}
			if r.cfg.ErrorPolicy == PolicyAbort {
				return serr
			}
			log.Printf("pipeline %s: convert: skipping %v", r.id, serr)
			r.stats.skipped.Add(1)
			continue
		}

		if err := send(ctx, out, present(e.seq, t)); err != nil {
			return err
		}
		r.stats.converted.Add(1)
	}
}

// reconstruct is stage 3. It converts each triplet back to floats, derives
// the pose and hands it to the reporter.
func (r *run) reconstruct(ctx context.Context, in <-chan envelope[imu.FixedTriplet]) error {
	for {
		e, err := recv(ctx, in)
		if err != nil {
			return err
		}
		if e.eos {
			return nil
		}

		rep := Report{
			RunID: r.id,
			Seq:   e.seq,
			Pose:  orientation.Reconstruct(e.value.Float(), r.cfg.Normalize),
		}
		if err := r.reporter.Report(ctx, rep); err != nil {
			return fmt.Errorf("report sample %d: %w", e.seq, err)
		}
		r.stats.reported.Add(1)
	}
}
