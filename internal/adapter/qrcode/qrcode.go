package qrcode

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 300

// Encoder renders payment URIs as PNG data URIs for embedding in the checkout
// page.
type Encoder struct {
	size int
}

func NewEncoder() *Encoder {
	return &Encoder{size: imageSize}
}

func (e *Encoder) DataURI(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, e.size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
