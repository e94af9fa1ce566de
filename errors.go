package iterman

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNotFound is returned by Manager.Get when no list is registered under the requested name.
	ErrNotFound errorkit.Error = "iterman: list not found"
	// ErrNameTaken is returned by Manager.Add when the name is already registered.
	ErrNameTaken errorkit.Error = "iterman: list name already taken"
	// ErrNotRewindable is returned when round-robin iteration or seeking is requested
	// over a source that doesn't support rewinding to its start.
	ErrNotRewindable errorkit.Error = "iterman: source is not rewindable"
	// ErrOutOfBounds is returned by Seek when the requested position lies past the end of the list.
	ErrOutOfBounds errorkit.Error = "iterman: out of bounds"
	// ErrMalformedUTF8 is returned when the bytes of an item can't be interpreted as UTF-8 text.
	ErrMalformedUTF8 errorkit.Error = "iterman: malformed UTF-8 content"
)
