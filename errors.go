package bdf

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNotEnoughData gets returned if the stream ends before all bytes of
	// a value could be read.
	ErrNotEnoughData = errors.New("not enough data for deserialization")
	// ErrLengthInvalid gets returned if a decoded length prefix exceeds the
	// remaining stream data or the configured allocation limit.
	ErrLengthInvalid = errors.New("length denotation invalid")
	// ErrInvalidBoolValue gets returned when a decoded bool byte is neither 0 nor 1.
	ErrInvalidBoolValue = errors.New("invalid bool value")
	// ErrNotAllConsumed gets returned by ConsumedAll if the stream still
	// holds unread bytes after deserialization finished.
	ErrNotAllConsumed = errors.New("not all data has been consumed but should have been")
)
