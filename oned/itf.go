package oned

import (
	"fmt"

	zxingrender "github.com/ericlevine/zxingrender"
	"github.com/ericlevine/zxingrender/bitutil"
)

// itfDigitWidths gives the narrow (1) / wide (3) pattern of each digit.
var itfDigitWidths = [10][5]int{
	{1, 1, 3, 3, 1}, // 0
	{3, 1, 1, 1, 3}, // 1
	{1, 3, 1, 1, 3}, // 2
	{3, 3, 1, 1, 1}, // 3
	{1, 1, 3, 1, 3}, // 4
	{3, 1, 3, 1, 1}, // 5
	{1, 3, 3, 1, 1}, // 6
	{1, 1, 1, 3, 3}, // 7
	{3, 1, 1, 3, 1}, // 8
	{1, 3, 1, 3, 1}, // 9
}

var (
	itfStartPattern = []int{1, 1, 1, 1}
	itfEndPattern   = []int{3, 1, 1}
)

const itfMaxLength = 80

// ITFWriter encodes ITF (Interleaved 2 of 5) barcodes.
type ITFWriter struct{}

// NewITFWriter creates a new ITF writer.
func NewITFWriter() *ITFWriter {
	return &ITFWriter{}
}

// Encode encodes the given contents into an ITF barcode BitMatrix.
func (w *ITFWriter) Encode(contents string, format zxingrender.Format, width, height int, opts *zxingrender.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != zxingrender.FormatITF {
		return nil, fmt.Errorf("can only encode ITF, but got %s: %w", format, zxingrender.ErrWriter)
	}
	code, err := w.EncodeContents(contents)
	if err != nil {
		return nil, err
	}
	return RenderCode(code, width, height, opts.MarginOr(DefaultMargin)), nil
}

// EncodeContents encodes an even number of digits. The first digit of each
// pair is carried by the bars, the second by the spaces between them.
func (w *ITFWriter) EncodeContents(contents string) ([]bool, error) {
	length := len(contents)
	if length == 0 || length%2 != 0 {
		return nil, fmt.Errorf("ITF requires an even, non-zero number of digits, got %d: %w", length, zxingrender.ErrInvalidArgument)
	}
	if length > itfMaxLength {
		return nil, fmt.Errorf("ITF contents should be at most %d digits, got %d: %w", itfMaxLength, length, zxingrender.ErrInvalidArgument)
	}
	if err := checkNumeric(contents); err != nil {
		return nil, err
	}

	pairs := make([][]int, 0, length/2)
	total := patternWidth(itfStartPattern) + patternWidth(itfEndPattern)
	for i := 0; i < length; i += 2 {
		bars := itfDigitWidths[contents[i]-'0']
		spaces := itfDigitWidths[contents[i+1]-'0']
		pair := make([]int, 10)
		for j := 0; j < 5; j++ {
			pair[2*j] = bars[j]
			pair[2*j+1] = spaces[j]
		}
		total += patternWidth(pair)
		pairs = append(pairs, pair)
	}

	result := make([]bool, total)
	pos := appendPattern(result, 0, itfStartPattern, true)
	for _, pair := range pairs {
		pos += appendPattern(result, pos, pair, true)
	}
	appendPattern(result, pos, itfEndPattern, true)
	return result, nil
}
