package pipeline

import "context"

// envelope carries one item between stages, or the end-of-stream sentinel.
// seq is the position of the originating sample in the drained source.
type envelope[T any] struct {
	seq   int
	value T
	eos   bool
}

func present[T any](seq int, v T) envelope[T] {
	return envelope[T]{seq: seq, value: v}
}

func endOfStream[T any]() envelope[T] {
	return envelope[T]{eos: true}
}

// send blocks until e is accepted or ctx is done.
func send[T any](ctx context.Context, ch chan<- envelope[T], e envelope[T]) error {
	select {
	case ch <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// recv blocks until an envelope arrives or ctx is done.
func recv[T any](ctx context.Context, ch <-chan envelope[T]) (envelope[T], error) {
	select {
	case e := <-ch:
		return e, nil
	case <-ctx.Done():
		return envelope[T]{}, ctx.Err()
	}
}
