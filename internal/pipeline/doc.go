// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package pipeline runs a batch of packed orientation samples through three
// concurrent stages:
//
//	SampleSource ──► acquire ──► A ──► convert ──► B ──► reconstruct ──► Reporter
//
// acquire drains the source, convert decodes bits into fixed-point angle
// triplets, and reconstruct turns those back into a Pose and reports it.
// A and B are bounded channels of envelopes. Shutdown is driven by an
// explicit end-of-stream envelope that each stage forwards before it
// returns; channel closure is never used to detect the end of the batch.
//
// The stages run in one errgroup, so a failing stage cancels the others and
// Run always joins all three. Run waits for them in order 1, 2, 3.
package pipeline
