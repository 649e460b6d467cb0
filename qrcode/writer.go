// Package qrcode provides a QR code Writer on top of github.com/skip2/go-qrcode.
package qrcode

import (
	"fmt"
	"strings"

	goqr "github.com/skip2/go-qrcode"

	zxingrender "github.com/ericlevine/zxingrender"
	"github.com/ericlevine/zxingrender/bitutil"
)

const defaultQuietZoneSize = 4

// Writer encodes QR codes.
type Writer struct{}

// NewWriter creates a new QR code Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes the given contents into a QR code BitMatrix of at least
// width x height, with the symbol centered and scaled by a whole number.
func (w *Writer) Encode(contents string, format zxingrender.Format, width, height int, opts *zxingrender.EncodeOptions) (*bitutil.BitMatrix, error) {
	if contents == "" {
		return nil, fmt.Errorf("found empty contents: %w", zxingrender.ErrInvalidArgument)
	}
	if format != zxingrender.FormatQRCode {
		return nil, fmt.Errorf("can only encode QR_CODE, but got %s: %w", format, zxingrender.ErrWriter)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("requested dimensions are too small: %dx%d: %w", width, height, zxingrender.ErrInvalidArgument)
	}

	level := goqr.Low
	if opts != nil && opts.ErrorCorrection != "" {
		var err error
		if level, err = recoveryLevel(opts.ErrorCorrection); err != nil {
			return nil, err
		}
	}

	code, err := goqr.New(contents, level)
	if err != nil {
		return nil, fmt.Errorf("encode QR_CODE: %v: %w", err, zxingrender.ErrWriter)
	}
	return renderModules(trimBorder(code.Bitmap()), width, height, opts.MarginOr(defaultQuietZoneSize)), nil
}

// trimBorder drops the quiet zone go-qrcode draws around the symbol. The
// finder patterns reach every edge of a QR symbol, so the bounding box of
// the dark modules is the symbol itself.
func trimBorder(bitmap [][]bool) [][]bool {
	top, left, bottom, right := len(bitmap), len(bitmap), -1, -1
	for y, row := range bitmap {
		for x, on := range row {
			if on {
				top, bottom = min(top, y), max(bottom, y)
				left, right = min(left, x), max(right, x)
			}
		}
	}
	if bottom < 0 {
		return nil
	}
	trimmed := make([][]bool, 0, bottom-top+1)
	for _, row := range bitmap[top : bottom+1] {
		trimmed = append(trimmed, row[left:right+1])
	}
	return trimmed
}

func recoveryLevel(name string) (goqr.RecoveryLevel, error) {
	switch strings.ToUpper(name) {
	case "L":
		return goqr.Low, nil
	case "M":
		return goqr.Medium, nil
	case "Q":
		return goqr.High, nil
	case "H":
		return goqr.Highest, nil
	default:
		return 0, fmt.Errorf("unknown error correction level: %s: %w", name, zxingrender.ErrInvalidArgument)
	}
}

// renderModules scales the square module grid, modules[y][x], into a
// BitMatrix with quietZone blank modules on every side.
func renderModules(modules [][]bool, width, height, quietZone int) *bitutil.BitMatrix {
	inputSize := len(modules)
	qrSize := inputSize + quietZone*2
	outputWidth := max(width, qrSize)
	outputHeight := max(height, qrSize)
	multiple := min(outputWidth/qrSize, outputHeight/qrSize)

	leftPadding := (outputWidth - inputSize*multiple) / 2
	topPadding := (outputHeight - inputSize*multiple) / 2

	output := bitutil.NewBitMatrixWithSize(outputWidth, outputHeight)
	for inputY, row := range modules {
		outputY := topPadding + inputY*multiple
		for inputX, on := range row {
			if on {
				output.SetRegion(leftPadding+inputX*multiple, outputY, multiple, multiple)
			}
		}
	}
	return output
}
