package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/inertial_pipeline/internal/imu"
)

func TestParseSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []imu.RawSample
	}{
		{"single line", "1, 2, 3\n", []imu.RawSample{{1, 2, 3}}},
		{"multiple lines", "4, 5, 6\n7, 8, 9\n", []imu.RawSample{{4, 5, 6}, {7, 8, 9}}},
		{"no trailing newline", "1,0,1", []imu.RawSample{{1, 0, 1}}},
		{"blank lines skipped", "\n1, 2\n\n  \n3\n", []imu.RawSample{{1, 2}, {3}}},
		{"mixed whitespace", " 1 ,\t2,3 \n", []imu.RawSample{{1, 2, 3}}},
		{"trailing comma", "1, 2, 3,\n", []imu.RawSample{{1, 2, 3}}},
		{"comments", "# header\n1, 0\n", []imu.RawSample{{1, 0}}},
		{"duplicates kept", "1, 1\n1, 1\n", []imu.RawSample{{1, 1}, {1, 1}}},
		{"large values parsed", "4294967295, 7\n", []imu.RawSample{{4294967295, 7}}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSamples(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSamplesErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"negative number", "1, 2\n-1, 0\n", "line 2"},
		{"word", "1, a, 0\n", "line 1"},
		{"empty field", "1,,0\n", "line 1"},
		{"too large", "4294967296\n", "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseSamples(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "samples.yaml")
		require.NoError(t, os.WriteFile(path, []byte("samples:\n  - [1, 0, 1]\n  - [0, 1]\n"), 0o644))

		got, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []imu.RawSample{{1, 0, 1}, {0, 1}}, got)
	})

	t.Run("csv lines", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "samples.txt")
		require.NoError(t, os.WriteFile(path, []byte("1, 0, 1\n0, 1\n"), 0o644))

		got, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []imu.RawSample{{1, 0, 1}, {0, 1}}, got)
	})

	t.Run("bad yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("samples: [[1, x]]\n"), 0o644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFile(filepath.Join(dir, "nope.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDefaultSamplesValid(t *testing.T) {
	t.Parallel()

	samples := DefaultSamples()
	require.Len(t, samples, 3)
	for i, s := range samples {
		assert.True(t, s.Valid(), "sample %d", i)
	}

	// Callers get their own copy.
	samples[0][0] = 9
	assert.Equal(t, uint32(1), DefaultSamples()[0][0])
}
