package source

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/relabs-tech/inertial_pipeline/internal/imu"
)

// ParseSamples reads one sample per line. Each line is a comma-separated
// list of unsigned integers; surrounding whitespace and a trailing comma are
// tolerated. Blank lines and lines starting with '#' are skipped.
//
// Values are not checked against {0, 1} here; the pipeline rejects bad bits
// when it decodes the sample.
func ParseSamples(r io.Reader) ([]imu.RawSample, error) {
	var samples []imu.RawSample

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		s, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("sample line %d: %w", lineNum, err)
		}
		if ok {
			samples = append(samples, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading samples: %w", err)
	}
	return samples, nil
}

// parseLine returns ok=false for lines that carry no sample.
func parseLine(line string) (imu.RawSample, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false, nil
	}
	line = strings.TrimSuffix(line, ",")

	fields := strings.Split(line, ",")
	s := make(imu.RawSample, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return nil, false, fmt.Errorf("invalid value %q: %w", strings.TrimSpace(f), err)
		}
		s = append(s, uint32(v))
	}
	return s, true, nil
}
