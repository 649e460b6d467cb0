package oned

import (
	zxingrender "github.com/ericlevine/zxingrender"
	"github.com/ericlevine/zxingrender/bitutil"
)

// DefaultMargin is the quiet zone, in modules, placed on each side of a
// linear barcode when EncodeOptions does not set one.
const DefaultMargin = 10

func init() {
	zxingrender.RegisterWriter(zxingrender.FormatEAN13, func() zxingrender.Writer { return NewEAN13Writer() })
	zxingrender.RegisterWriter(zxingrender.FormatEAN8, func() zxingrender.Writer { return NewEAN8Writer() })
	zxingrender.RegisterWriter(zxingrender.FormatUPCA, func() zxingrender.Writer { return NewUPCAWriter() })
	zxingrender.RegisterWriter(zxingrender.FormatITF, func() zxingrender.Writer { return NewITFWriter() })
	zxingrender.RegisterWriter(zxingrender.FormatCode39, func() zxingrender.Writer { return NewCode39Writer() })
	zxingrender.RegisterWriter(zxingrender.FormatCode128, func() zxingrender.Writer { return NewCode128Writer() })
	zxingrender.RegisterWriter(zxingrender.FormatCodabar, func() zxingrender.Writer { return NewCodabarWriter() })
}

// RenderCode lays out a bar pattern as a BitMatrix of at least width x height.
// Each module becomes the largest whole number of pixels that fits the
// requested width with margin quiet-zone modules on both sides; the code is
// centered horizontally and fills every row.
func RenderCode(code []bool, width, height, margin int) *bitutil.BitMatrix {
	inputWidth := len(code)
	fullWidth := inputWidth + 2*margin
	if width < fullWidth {
		width = fullWidth
	}
	if height < 1 {
		height = 1
	}

	multiple := width / fullWidth
	leftPadding := (width - inputWidth*multiple) / 2

	output := bitutil.NewBitMatrixWithSize(width, height)
	for inputX, outputX := 0, leftPadding; inputX < inputWidth; inputX, outputX = inputX+1, outputX+multiple {
		if code[inputX] {
			output.SetRegion(outputX, 0, multiple, height)
		}
	}
	return output
}

// appendPattern writes runs of alternating color, starting with startColor
// (true = bar), into target at pos. It returns the number of modules written.
func appendPattern(target []bool, pos int, pattern []int, startColor bool) int {
	color := startColor
	numAdded := 0
	for _, run := range pattern {
		for j := 0; j < run; j++ {
			target[pos] = color
			pos++
		}
		numAdded += run
		color = !color
	}
	return numAdded
}

// patternWidth sums the module widths of a pattern.
func patternWidth(pattern []int) int {
	n := 0
	for _, run := range pattern {
		n += run
	}
	return n
}
