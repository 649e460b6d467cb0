package render

import (
	"fmt"
	"image/color"

	zxingrender "github.com/ericlevine/zxingrender"
)

// Matrix is a read-only grid of barcode modules; Get reports whether the
// module at column x, row y is dark. *bitutil.BitMatrix implements it.
type Matrix interface {
	Width() int
	Height() int
	Get(x, y int) bool
}

// Renderer paints matrices into packed pixel bitmaps.
type Renderer struct {
	Foreground color.NRGBA
	Background color.NRGBA
	Font       Font
}

// NewRenderer returns a renderer drawing opaque black on opaque white.
func NewRenderer() *Renderer {
	return &Renderer{
		Foreground: color.NRGBA{A: 0xff},
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Font:       DefaultFont,
	}
}

// Render paints m into a new Bitmap of the same size.
//
// When format and content call for a caption, the bottom CaptionRows rows
// are left unwritten and the caption text is returned in the bitmap. Either
// the whole bitmap is produced or an error wrapping
// zxingrender.ErrInvalidArgument is returned.
func (r *Renderer) Render(m Matrix, format zxingrender.Format, content string) (*Bitmap, error) {
	if m == nil {
		return nil, fmt.Errorf("render: nil matrix: %w", zxingrender.ErrInvalidArgument)
	}
	width, height := m.Width(), m.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: matrix is %dx%d: %w", width, height, zxingrender.ErrInvalidArgument)
	}
	caption, err := FormatCaption(format, content)
	if err != nil {
		return nil, err
	}
	rows := height - caption.ReservedRows
	if rows <= 0 {
		return nil, fmt.Errorf("render: matrix height %d leaves no room above a %d-row caption: %w",
			height, caption.ReservedRows, zxingrender.ErrInvalidArgument)
	}

	foreground := PackColor(r.Foreground)
	background := PackColor(r.Background)
	pix := make([]uint32, width*height)
	index := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			if m.Get(x, y) {
				pix[index] = foreground
			} else {
				pix[index] = background
			}
			index++
		}
	}
	return &Bitmap{Pix: pix, Width: width, Height: height, Caption: caption}, nil
}
