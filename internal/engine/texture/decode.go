package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"io"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned for data no registered decoder recognises.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Decode reads an image and returns it as RGBA, flipped for OpenGL.
func Decode(r io.Reader) (*image.RGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", ErrUnsupportedFormat
		}
		return nil, format, fmt.Errorf("decoding %s: %w", format, err)
	}
	rgba := ToRGBA(img)
	FlipVertical(rgba)
	return rgba, format, nil
}

// DecodeBytes is Decode over an in-memory file.
func DecodeBytes(data []byte) (*image.RGBA, string, error) {
	return Decode(bytes.NewReader(data))
}

// ToRGBA converts any image to a tightly packed *image.RGBA with origin (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// FlipVertical reverses the row order in place. Image files store the top row
// first; glTexImage2D expects the bottom row first.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	rowSize := img.Bounds().Dx() * 4
	tmp := make([]byte, rowSize)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowSize]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowSize]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Solid returns a 1x1 texture of a single colour, used while real textures load.
func Solid(name string, r, g, b, a uint8) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = r, g, b, a
	return FromImage(name, img)
}
