package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/relabs-tech/inertial_pipeline/internal/imu"
)

// sampleFile is the layout of a YAML sample set:
//
//	samples:
//	  - [1, 0, 1, 1, 0, 0, 1, 0, ...]
//	  - [0, 1, 0, 1, 0, 1, 0, 1, ...]
type sampleFile struct {
	Samples [][]uint32 `yaml:"samples"`
}

// LoadFile reads a sample set from path. Files ending in .yaml or .yml are
// decoded as YAML; anything else is parsed as comma-separated lines.
func LoadFile(path string) ([]imu.RawSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read samples file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		samples, err := ParseSamples(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse samples file %s: %w", path, err)
		}
		return samples, nil
	}
}

func decodeYAML(data []byte) ([]imu.RawSample, error) {
	var f sampleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse samples yaml: %w", err)
	}

	samples := make([]imu.RawSample, 0, len(f.Samples))
	for _, s := range f.Samples {
		samples = append(samples, imu.RawSample(s))
	}
	return samples, nil
}
