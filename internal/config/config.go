package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/relabs-tech/inertial_pipeline/internal/codec"
	"github.com/relabs-tech/inertial_pipeline/internal/pipeline"
)

// Config holds all application configuration values.
type Config struct {
	// Pipeline
	FractionalBits  uint32
	ChannelCapacity int
	ErrorPolicy     pipeline.ErrorPolicy
	Normalize       bool

	// Sample input
	SamplesFile    string
	SerialPort     string
	SerialBaudRate int

	// MQTT
	MQTTBroker           string
	MQTTClientIDPipeline string
	MQTTClientIDConsole  string
	MQTTClientIDWeb      string

	// Topics
	TopicOrientation string

	// Web Server
	WebServerPort int
}

// Package-level unexported variables for the singleton:
//   - globalConfig is only reachable through InitGlobal and Get.
//   - configOnce makes InitGlobal run once, even if called multiple times.
//   - configMu guards globalConfig; Get takes the read lock.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Default returns the configuration used when no file is given. MQTT is
// disabled until MQTT_BROKER is set.
func Default() *Config {
	return &Config{
		FractionalBits:       codec.DefaultFractionalBits,
		ChannelCapacity:      pipeline.DefaultChannelCapacity,
		ErrorPolicy:          pipeline.PolicyAbort,
		Normalize:            true,
		SerialBaudRate:       115200,
		MQTTClientIDPipeline: "inertial-pipeline",
		MQTTClientIDConsole:  "inertial-console-subscriber",
		MQTTClientIDWeb:      "inertial-web-subscriber",
		TopicOrientation:     "inertial/orientation",
		WebServerPort:        8080,
	}
}

// Load reads the configuration file and returns a Config struct. Keys not
// present in the file keep their Default values.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := Default()
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// Pipeline
	case "FRACTIONAL_BITS":
		bits, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid FRACTIONAL_BITS %q: %w", value, err)
		}
		if bits < 0 || bits > codec.MaxFractionalBits {
			return fmt.Errorf("FRACTIONAL_BITS must be 0-%d, got %d", codec.MaxFractionalBits, bits)
		}
		c.FractionalBits = uint32(bits)
	case "CHANNEL_CAPACITY":
		capacity, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid CHANNEL_CAPACITY %q: %w", value, err)
		}
		if capacity < 1 {
			return fmt.Errorf("CHANNEL_CAPACITY must be at least 1, got %d", capacity)
		}
		c.ChannelCapacity = capacity
	case "ERROR_POLICY":
		policy, err := pipeline.ParseErrorPolicy(value)
		if err != nil {
			return fmt.Errorf("invalid ERROR_POLICY: %w", err)
		}
		c.ErrorPolicy = policy
	case "NORMALIZE":
		normalize, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid NORMALIZE %q: %w", value, err)
		}
		c.Normalize = normalize

	// Sample input
	case "SAMPLES_FILE":
		c.SamplesFile = value
	case "SERIAL_PORT":
		c.SerialPort = value
	case "SERIAL_BAUD_RATE":
		rate, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid SERIAL_BAUD_RATE %q: %w", value, err)
		}
		c.SerialBaudRate = rate

	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_PIPELINE":
		c.MQTTClientIDPipeline = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value

	// Topics
	case "TOPIC_ORIENTATION":
		c.TopicOrientation = value

	// Web Server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that dependent fields are consistent.
func (c *Config) validate() error {
	if c.SamplesFile != "" && c.SerialPort != "" {
		return fmt.Errorf("SAMPLES_FILE and SERIAL_PORT are mutually exclusive")
	}
	if c.SerialPort != "" && c.SerialBaudRate <= 0 {
		return fmt.Errorf("SERIAL_BAUD_RATE is required with SERIAL_PORT")
	}
	if c.MQTTBroker != "" && c.TopicOrientation == "" {
		return fmt.Errorf("TOPIC_ORIENTATION is required with MQTT_BROKER")
	}
	if c.WebServerPort <= 0 || c.WebServerPort > 65535 {
		return fmt.Errorf("WEB_SERVER_PORT must be 1-65535, got %d", c.WebServerPort)
	}
	return nil
}

// Pipeline returns the pipeline settings of c.
func (c *Config) Pipeline() pipeline.Config {
	return pipeline.Config{
		FractionalBits:  c.FractionalBits,
		ChannelCapacity: c.ChannelCapacity,
		ErrorPolicy:     c.ErrorPolicy,
		Normalize:       c.Normalize,
	}
}

// InitGlobal initializes the global configuration from file. An empty path
// installs Default. Uses sync.Once, so only the first call has any effect.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		if configPath == "" {
			globalConfig = Default()
			return
		}
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
