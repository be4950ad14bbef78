// Package writer populates the fixed-size record lists of a serialized routing
// resource graph.
//
// A writer is bound once to a message, which allocates a list of a declared
// length inside the message's RrGraph root. After that, records are written by
// index. The writer holds only a reference into the message; the message owner
// keeps it alive for as long as the writer is used and releases it afterwards.
//
// Writers are not safe for concurrent use. Callers that share a message across
// goroutines must serialize access themselves.
package writer

import (
	"errors"
	"fmt"
	"math"

	capnp "capnproto.org/go/capnp/v3"

	"rrgraph/internal/ucap"
)

var (
	// ErrAlreadyInitialized is returned when Init is called on a bound writer.
	ErrAlreadyInitialized = errors.New("writer already initialized")
	// ErrNotInitialized is returned when a record is written before Init.
	ErrNotInitialized = errors.New("writer not initialized")
	// ErrIndexOutOfRange is returned for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidCount is returned for a negative or oversized list length.
	ErrInvalidCount = errors.New("invalid record count")
	// ErrNoRoot is returned when the message carries no RrGraph root.
	ErrNoRoot = errors.New("message has no graph root")
	// ErrListAllocated is returned when the message already holds the list.
	ErrListAllocated = errors.New("list already allocated in message")
)

func checkCount(n int) (int32, error) {
	if n < 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return int32(n), nil
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, length)
	}
	return nil
}

func graphRoot(msg *capnp.Message) (ucap.RrGraph, error) {
	if msg == nil {
		return ucap.RrGraph{}, ErrNoRoot
	}

	root, err := ucap.ReadRootRrGraph(msg)
	if err != nil {
		return ucap.RrGraph{}, fmt.Errorf("failed to read graph root: %w", err)
	}
	if !root.IsValid() {
		return ucap.RrGraph{}, ErrNoRoot
	}

	return root, nil
}
