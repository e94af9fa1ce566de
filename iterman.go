// Package iterman provides list iterators for substitutable values.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// A list of values may live fully materialized in memory, may be read line by line from a stream,
// or may be assembled from the files of a directory;
// the consumer pulls values through the same contract without knowing which backing store they came from.
// Lists either stop at the end of their data or cycle back to the beginning and never stop,
// which makes the same consumer code usable for one-shot and for unbounded rotation use-cases.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Round-robin_scheduling
package iterman

import (
	"io"
)

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	//
	// Running out of data is not an error: an exhausted list keeps returning false from Next while Err stays nil.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}
