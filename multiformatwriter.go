package zxingrender

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ericlevine/zxingrender/bitutil"
)

// MultiFormatWriter is a factory/dispatcher that selects the appropriate Writer
// implementation based on the requested format.
type MultiFormatWriter struct{}

// NewMultiFormatWriter creates a new multi-format writer.
func NewMultiFormatWriter() *MultiFormatWriter {
	return &MultiFormatWriter{}
}

// WriterFactory creates a Writer.
type WriterFactory func() Writer

var (
	writerMu        sync.RWMutex
	writerFactories = map[Format]WriterFactory{}
)

// RegisterWriter registers a writer factory for the given format. Format
// packages call it from init.
func RegisterWriter(format Format, factory WriterFactory) {
	writerMu.Lock()
	defer writerMu.Unlock()
	writerFactories[format] = factory
}

// RegisteredFormats returns the formats that currently have a writer, in
// enumeration order.
func RegisteredFormats() []Format {
	writerMu.RLock()
	defer writerMu.RUnlock()
	formats := make([]Format, 0, len(writerFactories))
	for f := range writerFactories {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Encode encodes the given contents into a barcode of the specified format.
func (w *MultiFormatWriter) Encode(contents string, format Format, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error) {
	writerMu.RLock()
	factory, ok := writerFactories[format]
	writerMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no writer registered for format %s: %w", format, ErrWriter)
	}
	return factory().Encode(contents, format, width, height, opts)
}

// Encode is a top-level convenience function that encodes the given contents
// into a barcode of the specified format.
func Encode(contents string, format Format, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error) {
	return NewMultiFormatWriter().Encode(contents, format, width, height, opts)
}
