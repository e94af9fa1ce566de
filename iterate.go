package iterman

import (
	"go.llib.dev/frameless/pkg/errorkit"
)

// Collect iterates the list until exhaustion and returns every value, then closes the list.
// Collecting a round-robin list over non-empty data never returns, use Take for those.
func Collect[T any](i Iterator[T]) (vs []T, rErr error) {
	defer errorkit.Finish(&rErr, i.Close)
	vs = make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}
	return vs, i.Err()
}

// Take will take up to `n` amount of values, if that many is available.
// The list is left open, taking more later continues where it stopped.
func Take[T any](i Iterator[T], n int) ([]T, error) {
	var vs []T
	for x := 0; x < n; x++ {
		if !i.Next() {
			break
		}
		vs = append(vs, i.Value())
	}
	return vs, i.Err()
}

// First returns the first value of the list and closes it.
func First[T any](i Iterator[T]) (value T, found bool, rErr error) {
	defer errorkit.Finish(&rErr, i.Close)
	if !i.Next() {
		return value, false, i.Err()
	}
	return i.Value(), true, i.Err()
}

// Count will iterate over and count the total iterations number, then close the list.
func Count[T any](i Iterator[T]) (total int, rErr error) {
	defer errorkit.Finish(&rErr, i.Close)
	for i.Next() {
		total++
	}
	return total, i.Err()
}

// Break is the error value that a ForEach block returns to stop the iteration early without an error outcome.
const Break errorkit.Error = "iterman: break"

// ForEach iterates the list and passes each value to the received block, then closes the list.
// A non-nil error from the block stops the iteration and becomes the returned outcome,
// except for Break, which stops the iteration with a nil outcome.
func ForEach[T any](i Iterator[T], fn func(T) error) (rErr error) {
	defer errorkit.Finish(&rErr, i.Close)
	for i.Next() {
		if err := fn(i.Value()); err == Break {
			break
		} else if err != nil {
			return err
		}
	}
	return i.Err()
}
