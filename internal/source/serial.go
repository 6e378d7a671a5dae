package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	serial "github.com/jacobsa/go-serial/serial"

	"github.com/relabs-tech/inertial_pipeline/internal/imu"
)

// EndMarker is the line a serial sender writes after its last sample.
const EndMarker = "END"

// SerialOptions selects the port a batch of samples is read from.
type SerialOptions struct {
	PortName string
	BaudRate uint
}

// openPort is swapped out in tests.
var openPort = func(o SerialOptions) (io.ReadWriteCloser, error) {
	return serial.Open(serial.OpenOptions{
		PortName:              o.PortName,
		BaudRate:              o.BaudRate,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	})
}

// ReadSerial opens the serial port and reads one sample per line, in the
// ParseSamples format, until EOF, an EndMarker line or ctx is done.
// Lines that fail to parse are logged and dropped: a noisy line should not
// cost the whole batch.
func ReadSerial(ctx context.Context, opts SerialOptions) ([]imu.RawSample, error) {
	port, err := openPort(opts)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", opts.PortName, err)
	}
	defer port.Close()
	log.Printf("source: serial port opened on %s at %d baud", opts.PortName, opts.BaudRate)

	// Closing the port is the only way to interrupt a blocked read.
	stop := context.AfterFunc(ctx, func() { port.Close() })
	defer stop()

	samples, err := readLines(bufio.NewReader(port))
	if ctx.Err() != nil {
		return samples, ctx.Err()
	}
	return samples, err
}

func readLines(r *bufio.Reader) ([]imu.RawSample, error) {
	var samples []imu.RawSample
	for lineNum := 1; ; lineNum++ {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return samples, fmt.Errorf("serial read: %w", err)
		}

		if strings.TrimSpace(line) == EndMarker {
			return samples, nil
		}
		s, ok, perr := parseLine(line)
		switch {
		case perr != nil:
			log.Printf("source: serial line %d dropped: %v", lineNum, perr)
		case ok:
			samples = append(samples, s)
		}

		if errors.Is(err, io.EOF) {
			return samples, nil
		}
	}
}
