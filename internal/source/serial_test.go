package source

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/inertial_pipeline/internal/imu"
)

type fakePort struct {
	io.Reader
	closed bool
}

func (p *fakePort) Write(b []byte) (int, error) { return len(b), nil }
func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	t.Run("stops at end marker", func(t *testing.T) {
		t.Parallel()
		r := bufio.NewReader(strings.NewReader("1,0\r\n0,1\nEND\n1,1\n"))
		got, err := readLines(r)
		require.NoError(t, err)
		assert.Equal(t, []imu.RawSample{{1, 0}, {0, 1}}, got)
	})

	t.Run("stops at eof without newline", func(t *testing.T) {
		t.Parallel()
		r := bufio.NewReader(strings.NewReader("1,0\n0,1"))
		got, err := readLines(r)
		require.NoError(t, err)
		assert.Equal(t, []imu.RawSample{{1, 0}, {0, 1}}, got)
	})

	t.Run("drops noisy lines", func(t *testing.T) {
		t.Parallel()
		r := bufio.NewReader(strings.NewReader("1,0\n$GPRMC,garbage\n0,1\n"))
		got, err := readLines(r)
		require.NoError(t, err)
		assert.Equal(t, []imu.RawSample{{1, 0}, {0, 1}}, got)
	})
}

// Not parallel: swaps the package-level port opener.
func TestReadSerial(t *testing.T) {
	orig := openPort
	t.Cleanup(func() { openPort = orig })

	port := &fakePort{Reader: strings.NewReader("1,0,1\nEND\n")}
	openPort = func(o SerialOptions) (io.ReadWriteCloser, error) {
		assert.Equal(t, "/dev/ttyUSB0", o.PortName)
		return port, nil
	}

	got, err := ReadSerial(context.Background(), SerialOptions{PortName: "/dev/ttyUSB0", BaudRate: 115200})
	require.NoError(t, err)
	assert.Equal(t, []imu.RawSample{{1, 0, 1}}, got)
	assert.True(t, port.closed)

	openPort = func(SerialOptions) (io.ReadWriteCloser, error) {
		return nil, errors.New("no such device")
	}
	_, err = ReadSerial(context.Background(), SerialOptions{PortName: "/dev/missing"})
	assert.ErrorContains(t, err, "/dev/missing")
}
