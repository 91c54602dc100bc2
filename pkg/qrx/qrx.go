// Package qrx renders opaque payloads into scannable QR image artifacts.
package qrx

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// DefaultSize is the rendered image edge length in pixels.
const DefaultSize = 256

// DataURLPrefix identifies a rendered artifact.
const DataURLPrefix = "data:image/png;base64,"

// EncodeDataURL renders payload as a QR code PNG and returns it as a base64
// data URL, the form clients embed directly into an <img> tag.
func EncodeDataURL(payload string) (string, error) {
	return encode(payload, DefaultSize)
}

func encode(payload string, size int) (string, error) {
	if payload == "" {
		return "", fmt.Errorf("qrx: empty payload")
	}

	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("qrx: encode payload: %w", err)
	}

	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return "", fmt.Errorf("qrx: scale image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return "", fmt.Errorf("qrx: png encode: %w", err)
	}

	return DataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
