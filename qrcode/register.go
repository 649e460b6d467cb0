package qrcode

import zxingrender "github.com/ericlevine/zxingrender"

func init() {
	zxingrender.RegisterWriter(zxingrender.FormatQRCode, func() zxingrender.Writer {
		return NewWriter()
	})
}
