package iterman

import (
	"go.llib.dev/frameless/pkg/errorkit"
)

// WithCallback wraps a list so that consuming code can hook into its lifecycle,
// most commonly to persist which values were already handed out.
func WithCallback[T any](i Iterator[T], c Callback[T]) Iterator[T] {
	return &callbackIterator[T]{Iterator: i, Callback: c}
}

// Callback holds the caller supplied hooks of WithCallback.
// Any of the fields may be left nil.
type Callback[T any] struct {
	// OnValue is invoked with each consumed value, right after the value became available through Value.
	// The returned error is the outcome of accepting the value:
	// a non-nil outcome stops the iteration and surfaces through Err.
	OnValue func(T) error
	// OnClose is invoked when the iterator gets closed, after the wrapped list's own Close.
	OnClose func() error
}

type callbackIterator[T any] struct {
	Iterator[T]
	Callback Callback[T]

	err error
}

func (i *callbackIterator[T]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.Iterator.Next() {
		return false
	}
	if i.Callback.OnValue != nil {
		if err := i.Callback.OnValue(i.Iterator.Value()); err != nil {
			i.err = err
			return false
		}
	}
	return true
}

func (i *callbackIterator[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.Iterator.Err()
}

func (i *callbackIterator[T]) Close() error {
	errs := []error{i.Iterator.Close()}
	if i.Callback.OnClose != nil {
		errs = append(errs, i.Callback.OnClose())
	}
	return errorkit.Merge(errs...)
}
