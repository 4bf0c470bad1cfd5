package scanner

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// QRDecoder decodes QR payloads from raw frames using gozxing.
type QRDecoder struct {
	reader gozxing.Reader
}

// NewQRDecoder creates a QR decoder.
func NewQRDecoder() *QRDecoder {
	return &QRDecoder{reader: qrcode.NewQRCodeReader()}
}

// Decode extracts the QR payload from a frame. Returns an error on every
// frame without a readable code, which the decode loop treats as a routine
// miss.
func (d *QRDecoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	result, err := d.reader.Decode(bmp, nil)
	if err != nil {
		return "", err
	}
	return result.GetText(), nil
}
