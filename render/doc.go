// Package render turns a barcode bit matrix into a packed 32-bit pixel
// buffer and works out the human-readable caption shown beneath linear
// barcodes.
//
// Pixels are packed as A<<24 | B<<16 | G<<8 | R, the native layout of the
// display surfaces the buffer is handed to. Do not "fix" the channel order.
//
// Linear formats with content get a caption: the bottom CaptionRows rows
// of the bitmap stay zero for a text collaborator to draw into, so such a
// matrix must be at least CaptionRows+1 rows tall.
//
// A Renderer is safe for concurrent use as long as its fields are not
// modified while a Render call is in progress.
package render
