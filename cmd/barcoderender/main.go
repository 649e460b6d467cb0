// Command barcoderender encodes content as a barcode, renders it to a packed
// pixel bitmap and writes the result as PNG or BMP. The caption text for
// linear formats is printed on stdout.
package main

func main() {
	Execute()
}
