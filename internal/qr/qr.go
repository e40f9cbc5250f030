// Package qr renders payment payloads as QR code images. The rest of the
// system only depends on the Renderer interface; the encoding library stays
// behind it.
package qr

import qrcode "github.com/skip2/go-qrcode"

// Renderer turns a payment payload into an image.
type Renderer interface {
	Render(payload string) ([]byte, error)
}

const imageSize = 200

// PNGRenderer renders payloads as PNG images with high error correction,
// sized for the payment display.
type PNGRenderer struct{}

// Render encodes payload as a PNG QR code.
func (PNGRenderer) Render(payload string) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.High, imageSize)
}
