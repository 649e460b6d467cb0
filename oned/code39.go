package oned

import (
	"fmt"
	"strings"

	zxingrender "github.com/ericlevine/zxingrender"
	"github.com/ericlevine/zxingrender/bitutil"
)

const code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// code39Encodings holds, per alphabet character, nine bits for the bar and
// space widths, most significant first; a set bit marks a wide element.
var code39Encodings = [43]int{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8, // U-$
	0x0A2, 0x08A, 0x02A, // /-%
}

const (
	code39AsteriskEncoding = 0x094
	code39MaxLength        = 80
)

// Code39Writer encodes Code 39 barcodes. Characters outside the basic
// alphabet are written with the full-ASCII shift pairs.
type Code39Writer struct{}

// NewCode39Writer creates a new Code 39 writer.
func NewCode39Writer() *Code39Writer {
	return &Code39Writer{}
}

// Encode encodes the given contents into a Code 39 barcode BitMatrix.
func (w *Code39Writer) Encode(contents string, format zxingrender.Format, width, height int, opts *zxingrender.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != zxingrender.FormatCode39 {
		return nil, fmt.Errorf("can only encode CODE_39, but got %s: %w", format, zxingrender.ErrWriter)
	}
	code, err := w.EncodeContents(contents)
	if err != nil {
		return nil, err
	}
	return RenderCode(code, width, height, opts.MarginOr(DefaultMargin)), nil
}

// EncodeContents encodes contents between the '*' start and stop characters.
func (w *Code39Writer) EncodeContents(contents string) ([]bool, error) {
	if contents == "" {
		return nil, fmt.Errorf("CODE_39 contents must not be empty: %w", zxingrender.ErrInvalidArgument)
	}
	if strings.IndexFunc(contents, func(r rune) bool { return strings.IndexRune(code39Alphabet, r) < 0 }) >= 0 {
		extended, err := code39FullASCII(contents)
		if err != nil {
			return nil, err
		}
		contents = extended
	}
	if len(contents) > code39MaxLength {
		return nil, fmt.Errorf("CODE_39 contents should be at most %d characters, got %d: %w",
			code39MaxLength, len(contents), zxingrender.ErrInvalidArgument)
	}

	// Nine elements per character plus one narrow gap.
	result := make([]bool, (len(contents)+2)*13-1)
	widths := make([]int, 9)
	gap := []int{1}

	code39Widths(code39AsteriskEncoding, widths)
	pos := appendPattern(result, 0, widths, true)
	pos += appendPattern(result, pos, gap, false)
	for i := 0; i < len(contents); i++ {
		code39Widths(code39Encodings[strings.IndexByte(code39Alphabet, contents[i])], widths)
		pos += appendPattern(result, pos, widths, true)
		pos += appendPattern(result, pos, gap, false)
	}
	code39Widths(code39AsteriskEncoding, widths)
	appendPattern(result, pos, widths, true)
	return result, nil
}

func code39Widths(encoding int, widths []int) {
	for i := range widths {
		widths[i] = 1
		if encoding&(1<<uint(8-i)) != 0 {
			widths[i] = 2
		}
	}
}

// code39FullASCII maps any ASCII string onto the basic alphabet using the
// $, %, / and + shift characters.
func code39FullASCII(contents string) (string, error) {
	var ext strings.Builder
	for i := 0; i < len(contents); i++ {
		c := contents[i]
		switch {
		case c == 0:
			ext.WriteString("%U")
		case c == ' ' || c == '-' || c == '.':
			ext.WriteByte(c)
		case c == '@':
			ext.WriteString("%V")
		case c == '`':
			ext.WriteString("%W")
		case c <= 26:
			ext.WriteByte('$')
			ext.WriteByte('A' + c - 1)
		case c < ' ':
			ext.WriteByte('%')
			ext.WriteByte('A' + c - 27)
		case c <= ',' || c == '/' || c == ':':
			ext.WriteByte('/')
			ext.WriteByte('A' + c - 33)
		case c <= '9':
			ext.WriteByte(c)
		case c <= '?':
			ext.WriteByte('%')
			ext.WriteByte('F' + c - 59)
		case c <= 'Z':
			ext.WriteByte(c)
		case c <= '_':
			ext.WriteByte('%')
			ext.WriteByte('K' + c - 91)
		case c <= 'z':
			ext.WriteByte('+')
			ext.WriteByte('A' + c - 97)
		case c <= 127:
			ext.WriteByte('%')
			ext.WriteByte('P' + c - 123)
		default:
			return "", fmt.Errorf("CODE_39 cannot encode byte 0x%02x: %w", c, zxingrender.ErrInvalidArgument)
		}
	}
	return ext.String(), nil
}
