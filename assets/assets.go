// Package assets decodes caller-supplied raster image payloads and
// synthesizes payment QR codes for embedding into generated documents.
//
// Every asset is returned as an explicit (Image, error) result; deciding
// whether a failed asset is fatal is left to the caller.
package assets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"golang.org/x/image/webp"
)

// Image is a decoded raster asset ready for registration with a PDF document.
type Image struct {
	Name   string // registration name, unique within a document
	Format string // "PNG", "JPG" or "GIF"
	Data   []byte
}

// DecodePayload decodes a logo or QR payload supplied as either raw base64
// or a base64 data URI. WEBP payloads are re-encoded to PNG; PNG, JPEG and
// GIF pass through unchanged.
func DecodePayload(name, payload string) (*Image, error) {
	s := strings.TrimSpace(payload)
	if s == "" {
		return nil, fmt.Errorf("assets: %s: empty payload", name)
	}

	if strings.HasPrefix(s, "data:") {
		comma := strings.IndexByte(s, ',')
		if comma < 0 {
			return nil, fmt.Errorf("assets: %s: malformed data URI", name)
		}
		if !strings.Contains(s[:comma], ";base64") {
			return nil, fmt.Errorf("assets: %s: data URI is not base64 encoded", name)
		}
		s = s[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		// Some producers strip the padding.
		data, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: %s: decoding base64: %w", name, err)
	}

	return fromRaster(name, data)
}

func fromRaster(name string, data []byte) (*Image, error) {
	if isWebP(data) {
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("assets: %s: decoding webp: %w", name, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("assets: %s: converting webp: %w", name, err)
		}
		return &Image{Name: name, Format: "PNG", Data: buf.Bytes()}, nil
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: %s: unrecognized image data: %w", name, err)
	}
	switch format {
	case "png":
		return &Image{Name: name, Format: "PNG", Data: data}, nil
	case "jpeg":
		return &Image{Name: name, Format: "JPG", Data: data}, nil
	case "gif":
		return &Image{Name: name, Format: "GIF", Data: data}, nil
	}
	return nil, fmt.Errorf("assets: %s: unsupported image format %q", name, format)
}

func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		bytes.Equal(data[:4], []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WEBP"))
}

// PaymentQR encodes content, typically a UPI payment URI, as a QR symbol
// scaled to px pixels square and returns it as a PNG image asset.
func PaymentQR(content string, px int) (*Image, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("assets: payment QR: empty content")
	}
	if px <= 0 {
		px = 256
	}

	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("assets: encoding payment QR: %w", err)
	}
	scaled, err := barcode.Scale(code, px, px)
	if err != nil {
		return nil, fmt.Errorf("assets: scaling payment QR: %w", err)
	}

	// The scaled barcode encodes as a 16-bit PNG, which gofpdf rejects.
	// Redraw it into an 8-bit grayscale image first.
	gray := image.NewGray(scaled.Bounds())
	draw.Draw(gray, gray.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("assets: writing payment QR: %w", err)
	}
	return &Image{Name: "payment-qr", Format: "PNG", Data: buf.Bytes()}, nil
}
