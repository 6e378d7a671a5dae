// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"fmt"
	"io"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/inertial_pipeline/internal/config"
	"github.com/relabs-tech/inertial_pipeline/internal/imu"
	"github.com/relabs-tech/inertial_pipeline/internal/orientation"
	"github.com/relabs-tech/inertial_pipeline/internal/pipeline"
	"github.com/relabs-tech/inertial_pipeline/internal/source"
)

// PipelineOptions are per-invocation overrides of the configured input.
type PipelineOptions struct {
	SamplesFile string // overrides SAMPLES_FILE
	Mock        int    // number of generated samples; wins over everything else
	MockStep    float64
}

// RunPipeline loads one batch of samples, runs it through the pipeline and
// writes a line per reconstructed pose to out. When MQTT_BROKER is set,
// every report is also published on TOPIC_ORIENTATION.
func RunPipeline(ctx context.Context, cfg *config.Config, opts PipelineOptions, out io.Writer) (pipeline.Stats, error) {
	samples, origin, err := loadSamples(ctx, cfg, opts)
	if err != nil {
		return pipeline.Stats{}, err
	}
	log.Printf("pipeline: loaded %d samples from %s", len(samples), origin)

	reporters := pipeline.MultiReporter{pipeline.NewConsoleReporter(out)}

	if cfg.MQTTBroker != "" {
		mqttOpts := mqtt.NewClientOptions().
			AddBroker(cfg.MQTTBroker).
			SetClientID(cfg.MQTTClientIDPipeline)

		client := mqtt.NewClient(mqttOpts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			return pipeline.Stats{}, fmt.Errorf("MQTT connect error: %w", token.Error())
		}
		defer client.Disconnect(250)
		log.Printf("pipeline: connected to MQTT broker at %s, publishing to %s", cfg.MQTTBroker, cfg.TopicOrientation)

		reporters = append(reporters, pipeline.NewMQTTReporter(client, cfg.TopicOrientation))
	}

	p, err := pipeline.New(cfg.Pipeline(), reporters)
	if err != nil {
		return pipeline.Stats{}, err
	}

	return p.Run(ctx, source.NewQueue(samples...))
}

// loadSamples picks the input in order of precedence: mock generator,
// samples file, serial port, built-in default set.
func loadSamples(ctx context.Context, cfg *config.Config, opts PipelineOptions) ([]imu.RawSample, string, error) {
	if opts.Mock > 0 {
		step := opts.MockStep
		if step <= 0 {
			step = 0.1
		}
		samples, err := source.Generate(orientation.NewMockSource(step), opts.Mock)
		return samples, "mock generator", err
	}

	path := opts.SamplesFile
	if path == "" {
		path = cfg.SamplesFile
	}
	if path != "" {
		samples, err := source.LoadFile(path)
		return samples, path, err
	}

	if cfg.SerialPort != "" {
		samples, err := source.ReadSerial(ctx, source.SerialOptions{
			PortName: cfg.SerialPort,
			BaudRate: uint(cfg.SerialBaudRate),
		})
		return samples, cfg.SerialPort, err
	}

	return source.DefaultSamples(), "default data set", nil
}
