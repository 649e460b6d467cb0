package render

import (
	"image"
	"image/color"
)

// Bitmap is a rendered barcode: Width*Height packed pixels in row-major
// order, plus the caption to be drawn in the reserved bottom rows.
//
// Pixels in the reserved strip are zero (transparent black) until a text
// collaborator draws into them through Set.
type Bitmap struct {
	Pix     []uint32
	Width   int
	Height  int
	Caption Caption
}

// Offset returns the index of the pixel at (x, y) in Pix.
func (b *Bitmap) Offset(x, y int) int {
	return y*b.Width + x
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.NRGBAModel }

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	return b.NRGBAAt(x, y)
}

// NRGBAAt returns the unpacked color at (x, y), or the zero color outside
// the bounds.
func (b *Bitmap) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return color.NRGBA{}
	}
	return UnpackColor(b.Pix[b.Offset(x, y)])
}

// Set implements draw.Image.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.SetNRGBA(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// SetNRGBA packs c into the pixel at (x, y). Points outside the bounds are
// ignored.
func (b *Bitmap) SetNRGBA(x, y int, c color.NRGBA) {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return
	}
	b.Pix[b.Offset(x, y)] = PackColor(c)
}
