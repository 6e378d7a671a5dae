// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package source

import (
	"sync"

	"github.com/relabs-tech/inertial_pipeline/internal/imu"
)

// Queue is an unbounded FIFO of raw samples. Push is safe from any number
// of goroutines; TryPop is meant for a single consumer.
type Queue struct {
	mu    sync.Mutex
	items []imu.RawSample
	head  int
}

var _ imu.SampleSource = (*Queue)(nil)

// NewQueue returns a queue pre-loaded with samples, in order.
func NewQueue(samples ...imu.RawSample) *Queue {
	q := &Queue{}
	Fill(q, samples)
	return q
}

// Push appends s to the tail of the queue.
func (q *Queue) Push(s imu.RawSample) {
	q.mu.Lock()
	q.items = append(q.items, s)
	q.mu.Unlock()
}

// TryPop removes and returns the head of the queue. It returns false when
// the queue is empty.
func (q *Queue) TryPop() (imu.RawSample, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head == len(q.items) {
		return nil, false
	}
	s := q.items[q.head]
	q.items[q.head] = nil
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return s, true
}

// Len returns the number of samples not yet popped.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Fill pushes samples into src in order.
func Fill(src imu.SampleSource, samples []imu.RawSample) {
	for _, s := range samples {
		src.Push(s)
	}
}
