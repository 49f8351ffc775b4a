package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	MaxUploadBytes = 5 << 20
	MaxWidth       = 1200
	webpQuality    = 80
)

var (
	ErrTooLarge          = errors.New("image exceeds 5MB")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	allowedFormats       = map[string]bool{"jpeg": true, "png": true, "webp": true}
)

// Process decodifica, reduz para no máximo MaxWidth de largura e recodifica em WebP.
func Process(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(raw) > MaxUploadBytes {
		return nil, ErrTooLarge
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil || !allowedFormats[format] {
		return nil, ErrUnsupportedFormat
	}

	img := resize(src, MaxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func resize(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return src
	}

	height := b.Dy() * maxWidth / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
