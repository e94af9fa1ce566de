package iterman

import "fmt"

// Error returns an Iterator whose only ability is returning an Err, it never has a next value.
// This is useful when a list source encounters an unexpected non recoverable error while being set up.
func Error[T any](err error) Iterator[T] {
	return &errorIterator[T]{err: err}
}

// Errorf behaves exactly like fmt.Errorf but returns the error wrapped as an iterator.
func Errorf[T any](format string, a ...any) Iterator[T] {
	return Error[T](fmt.Errorf(format, a...))
}

type errorIterator[T any] struct {
	err error
}

func (i *errorIterator[T]) Close() error {
	return nil
}

func (i *errorIterator[T]) Next() bool {
	return false
}

func (i *errorIterator[T]) Err() error {
	return i.err
}

func (i *errorIterator[T]) Value() T {
	var v T
	return v
}
