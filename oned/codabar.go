package oned

import (
	"fmt"
	"strings"

	zxingrender "github.com/ericlevine/zxingrender"
	"github.com/ericlevine/zxingrender/bitutil"
)

const (
	codabarAlphabet     = "0123456789-$:/.+ABCD"
	codabarGuards       = "ABCD"
	codabarAltGuards    = "TN*E"
	codabarDataChars    = "0123456789-$:/.+"
	codabarMaxLength    = 80
	codabarDefaultGuard = 'A'
)

// codabarWidths holds the seven element widths (bar first, 2 = wide) of
// each alphabet character.
var codabarWidths = [20][]int{
	{1, 1, 1, 1, 1, 2, 2}, // 0
	{1, 1, 1, 1, 2, 2, 1}, // 1
	{1, 1, 1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1, 1, 1}, // 3
	{1, 1, 2, 1, 1, 2, 1}, // 4
	{2, 1, 1, 1, 1, 2, 1}, // 5
	{1, 2, 1, 1, 1, 1, 2}, // 6
	{1, 2, 1, 1, 2, 1, 1}, // 7
	{1, 2, 2, 1, 1, 1, 1}, // 8
	{2, 1, 1, 2, 1, 1, 1}, // 9
	{1, 1, 1, 2, 2, 1, 1}, // -
	{1, 1, 2, 2, 1, 1, 1}, // $
	{2, 1, 1, 1, 2, 1, 2}, // :
	{2, 1, 2, 1, 1, 1, 2}, // /
	{2, 1, 2, 1, 2, 1, 1}, // .
	{1, 1, 2, 1, 2, 1, 2}, // +
	{1, 1, 2, 2, 1, 2, 1}, // A
	{1, 2, 1, 2, 1, 1, 2}, // B
	{1, 1, 1, 2, 1, 2, 2}, // C
	{1, 1, 1, 2, 2, 2, 1}, // D
}

// CodabarWriter encodes Codabar barcodes.
type CodabarWriter struct{}

// NewCodabarWriter creates a new Codabar writer.
func NewCodabarWriter() *CodabarWriter {
	return &CodabarWriter{}
}

// Encode encodes the given contents into a Codabar barcode BitMatrix.
func (w *CodabarWriter) Encode(contents string, format zxingrender.Format, width, height int, opts *zxingrender.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != zxingrender.FormatCodabar {
		return nil, fmt.Errorf("can only encode CODABAR, but got %s: %w", format, zxingrender.ErrWriter)
	}
	code, err := w.EncodeContents(contents)
	if err != nil {
		return nil, err
	}
	return RenderCode(code, width, height, opts.MarginOr(DefaultMargin)), nil
}

// EncodeContents encodes contents framed by start/stop characters. Contents
// may bring their own guards (A-D, or the alternates T, N, *, E, in either
// case); otherwise A is used at both ends.
func (w *CodabarWriter) EncodeContents(contents string) ([]bool, error) {
	framed, err := codabarFrame(contents)
	if err != nil {
		return nil, err
	}
	if len(framed) > codabarMaxLength {
		return nil, fmt.Errorf("CODABAR contents should be at most %d characters, got %d: %w",
			codabarMaxLength, len(framed), zxingrender.ErrInvalidArgument)
	}

	// Characters are separated by one narrow space.
	total := len(framed) - 1
	for i := 0; i < len(framed); i++ {
		total += patternWidth(codabarWidths[strings.IndexByte(codabarAlphabet, framed[i])])
	}
	result := make([]bool, total)
	pos := 0
	for i := 0; i < len(framed); i++ {
		pos += appendPattern(result, pos, codabarWidths[strings.IndexByte(codabarAlphabet, framed[i])], true)
		if i < len(framed)-1 {
			pos++
		}
	}
	return result, nil
}

// codabarFrame validates contents and returns them with normalized guard
// characters at both ends.
func codabarFrame(contents string) (string, error) {
	if contents == "" {
		return "", fmt.Errorf("CODABAR contents must not be empty: %w", zxingrender.ErrInvalidArgument)
	}
	data := contents
	start, end := byte(codabarDefaultGuard), byte(codabarDefaultGuard)
	if len(contents) >= 2 {
		first, firstOK := codabarGuard(contents[0])
		last, lastOK := codabarGuard(contents[len(contents)-1])
		switch {
		case firstOK && lastOK:
			start, end = first, last
			data = contents[1 : len(contents)-1]
		case firstOK || lastOK:
			return "", fmt.Errorf("invalid CODABAR start/end guards in %q: %w", contents, zxingrender.ErrFormat)
		}
	}
	for i := 0; i < len(data); i++ {
		if strings.IndexByte(codabarDataChars, data[i]) < 0 {
			return "", fmt.Errorf("CODABAR cannot encode %q: %w", data[i], zxingrender.ErrInvalidArgument)
		}
	}
	return string(start) + data + string(end), nil
}

// codabarGuard maps a start/stop character, including the alternates, to
// one of A-D.
func codabarGuard(c byte) (byte, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if strings.IndexByte(codabarGuards, c) >= 0 {
		return c, true
	}
	if i := strings.IndexByte(codabarAltGuards, c); i >= 0 {
		return codabarGuards[i], true
	}
	return 0, false
}
