// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/relabs-tech/inertial_pipeline/internal/app"
	"github.com/relabs-tech/inertial_pipeline/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults are used when empty)")
	samplesFile := flag.String("samples", "", "samples file (.txt lines or .yaml), overrides SAMPLES_FILE")
	mock := flag.Int("mock", 0, "generate this many mock samples instead of loading any")
	mockStep := flag.Float64("mock-step", 0.1, "time step between mock samples")
	flag.Parse()

	log.Println("starting inertial-pipeline (samples → orientation)")

	// Load configuration
	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := app.PipelineOptions{SamplesFile: *samplesFile, Mock: *mock, MockStep: *mockStep}
	stats, err := app.RunPipeline(ctx, config.Get(), opts, os.Stdout)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
	log.Printf("simulation concluded: %d reported, %d skipped", stats.Reported, stats.Skipped)
}
