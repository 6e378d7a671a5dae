package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/relabs-tech/inertial_pipeline/internal/orientation"
)

// Report is one reconstructed orientation handed to the sink.
type Report struct {
	RunID string `json:"run_id"`
	Seq   int    `json:"seq"`
	orientation.Pose
}

// Reporter receives every report of a run, in sample order, from a single
// goroutine. A returned error aborts the run.
type Reporter interface {
	Report(ctx context.Context, r Report) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, r Report) error

// Report calls f(ctx, r).
func (f ReporterFunc) Report(ctx context.Context, r Report) error { return f(ctx, r) }

// MultiReporter hands each report to every reporter in order and stops at
// the first error.
type MultiReporter []Reporter

func (m MultiReporter) Report(ctx context.Context, r Report) error {
	for _, rep := range m {
		if err := rep.Report(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// ConsoleReporter writes one text line per report. It is safe to share
// between concurrent runs.
type ConsoleReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleReporter returns a reporter writing to w (usually os.Stdout).
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (c *ConsoleReporter) Report(_ context.Context, r Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.w, FormatReport(r))
	return err
}

// FormatReport renders r as a console line, newline included.
func FormatReport(r Report) string {
	return fmt.Sprintf("[POSE] seq=%d  ROLL=%8.3f  PITCH=%8.3f  YAW=%8.3f\n",
		r.Seq, r.Roll, r.Pitch, r.Yaw)
}
