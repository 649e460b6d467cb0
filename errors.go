package zxingrender

import "errors"

var (
	// ErrInvalidArgument is returned when a caller supplies a nil or empty
	// matrix, malformed content, or an unparsable option.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFormat is returned when contents do not fit the rules of a format.
	ErrFormat = errors.New("format error")

	// ErrWriter is returned when a barcode cannot be encoded.
	ErrWriter = errors.New("writer error")
)
