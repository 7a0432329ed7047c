package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const (
	MaxUploadBytes  = 5 << 20
	MaxWidth        = 1280
	webpQuality     = 80
	ContentTypeWebP = "image/webp"
)

var (
	ErrUnsupportedImage = httperr.Validation("unsupported_image", "Image must be a JPEG, PNG or WebP file")
	ErrImageTooLarge    = httperr.Validation("image_too_large", "Image cannot exceed 5 MB")
)

// ToWebP decodes a JPEG, PNG or WebP upload, shrinks it to maxWidth keeping
// the aspect ratio and re-encodes it as WebP.
func ToWebP(r io.Reader, maxWidth int) ([]byte, error) {
	const op = "media.ToWebP"

	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(raw) > MaxUploadBytes {
		return nil, ErrImageTooLarge
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrUnsupportedImage
	}
	switch format {
	case "jpeg", "png", "webp":
	default:
		return nil, ErrUnsupportedImage
	}

	img := src
	b := src.Bounds()
	if b.Dx() > maxWidth {
		h := b.Dy() * maxWidth / b.Dx()
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}
