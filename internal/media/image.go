package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Barber portraits are shown at card size; anything wider gets scaled.
	MaxImageWidth = 800

	webpQuality = 82
)

// ToWebP decodes a JPEG or PNG upload, downscales it to MaxImageWidth while
// keeping the aspect ratio, and re-encodes it as webp.
func ToWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if bounds.Dx() > MaxImageWidth {
		height := bounds.Dy() * MaxImageWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, MaxImageWidth, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
