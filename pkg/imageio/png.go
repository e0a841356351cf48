package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// WritePNG writes a normalized HDR buffer as an 8-bit RGBA PNG
func WritePNG(w io.Writer, buffer []core.Vec4, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := EncodeRGBA8(buffer[y*width+x], true)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
