package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// assumedSourceDPI is the scan density assumed for images that carry no
// resolution information of their own.
const assumedSourceDPI = 150

// Preprocess normalizes an encoded image for recognition: it decodes the
// payload (PNG, JPEG, or TIFF), upscales it towards targetDPI, optionally
// flattens it to grayscale, and re-encodes it as PNG. When targetDPI is at or
// below the assumed source density and grayscale is off, the input is decoded
// and re-encoded unchanged so providers always receive PNG.
func Preprocess(data []byte, targetDPI int, grayscale bool) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if scale := scaleFactor(targetDPI); scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img = dst
	}

	if grayscale {
		b := img.Bounds()
		dst := image.NewGray(b)
		draw.Draw(dst, b, img, b.Min, draw.Src)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleFactor(targetDPI int) int {
	if targetDPI <= assumedSourceDPI {
		return 1
	}
	scale := (targetDPI + assumedSourceDPI - 1) / assumedSourceDPI
	if scale > 4 {
		scale = 4
	}
	return scale
}
