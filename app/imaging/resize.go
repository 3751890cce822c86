package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// DecodeAndScale decodes a weld-point still (the equipment writes BMP; PNG
// and JPEG decode too), scales it to targetWidth preserving aspect ratio and
// re-encodes as PNG. Scaling caps the stored payload; source bitmaps run to
// several megabytes each.
func DecodeAndScale(data []byte, targetWidth int) ([]byte, error) {
	src, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		src, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
	}

	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("decode image: empty bounds %v", b)
	}
	height := int(math.Round(float64(targetWidth) * float64(b.Dy()) / float64(b.Dx())))
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
