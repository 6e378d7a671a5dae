package pipeline

import (
	"fmt"
	"strings"

	"github.com/relabs-tech/inertial_pipeline/internal/codec"
)

// ErrorPolicy decides what convert does with a sample that fails to decode.
type ErrorPolicy int

const (
	// PolicyAbort fails the whole run on the first bad sample.
	PolicyAbort ErrorPolicy = iota
	// PolicySkip logs the bad sample, drops it and keeps draining.
	PolicySkip
)

func (p ErrorPolicy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicySkip:
		return "skip"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}

// ParseErrorPolicy accepts "abort" or "skip", case-insensitively.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	default:
		return 0, fmt.Errorf("unknown error policy %q (want abort or skip)", s)
	}
}

// DefaultChannelCapacity bounds each inter-stage channel.
const DefaultChannelCapacity = 64

// Config holds the tunables of a pipeline run.
type Config struct {
	FractionalBits  uint32
	ChannelCapacity int
	ErrorPolicy     ErrorPolicy
	// Normalize composes the decoded angles into a rotation and re-extracts
	// roll, pitch and yaw. When false the decoded angles are reported as is.
	Normalize bool
}

// DefaultConfig returns Q16.16 decoding, bounded channels, abort on error
// and normalization on.
func DefaultConfig() Config {
	return Config{
		FractionalBits:  codec.DefaultFractionalBits,
		ChannelCapacity: DefaultChannelCapacity,
		ErrorPolicy:     PolicyAbort,
		Normalize:       true,
	}
}

func (c Config) validate() error {
	if c.FractionalBits > codec.MaxFractionalBits {
		return fmt.Errorf("%w: fractional bits must be 0-%d, got %d", ErrInvalidConfig, codec.MaxFractionalBits, c.FractionalBits)
	}
	if c.ChannelCapacity < 1 {
		return fmt.Errorf("%w: channel capacity must be at least 1, got %d", ErrInvalidConfig, c.ChannelCapacity)
	}
	if c.ErrorPolicy != PolicyAbort && c.ErrorPolicy != PolicySkip {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.ErrorPolicy)
	}
	return nil
}
