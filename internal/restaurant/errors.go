package restaurant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoSuchTable means the table number is outside the configured universe.
	ErrNoSuchTable = errors.New("restaurant: no such table")
	// ErrTableOccupied means the table already has an active order.
	ErrTableOccupied = errors.New("restaurant: table occupied")
	// ErrNoSuchOrder means the table has no active order.
	ErrNoSuchOrder = errors.New("restaurant: no such order")
	// ErrItemNotFound means the dish name does not resolve in the menu.
	ErrItemNotFound = errors.New("restaurant: item not found")
	// ErrMalformedInput means user input could not be interpreted.
	ErrMalformedInput = errors.New("restaurant: malformed input")
	// ErrIOFailure wraps filesystem failures while saving or loading state.
	ErrIOFailure = errors.New("restaurant: io failure")
)

// Kind groups errors by how callers are expected to react to them.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindConflict
	KindMalformedInput
	KindIOFailure
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindMalformedInput:
		return "malformed input"
	case KindIOFailure:
		return "io failure"
	default:
		return "unknown"
	}
}

// KindOf classifies err.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNoSuchOrder), errors.Is(err, ErrItemNotFound):
		return KindNotFound
	case errors.Is(err, ErrNoSuchTable), errors.Is(err, ErrTableOccupied):
		return KindConflict
	case errors.Is(err, ErrMalformedInput):
		return KindMalformedInput
	case errors.Is(err, ErrIOFailure):
		return KindIOFailure
	default:
		return KindUnknown
	}
}

// ParseTableNumber reads a table number typed by a user.
func ParseTableNumber(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: table number must be an integer, got %q", ErrMalformedInput, trimmed)
	}
	return n, nil
}
