package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mvollmer/go-pathtracer/pkg/core"
)

// WritePPM writes a normalized HDR buffer as a plain-text P3 PPM, row-major
// top to bottom, gamma-encoded
func WritePPM(w io.Writer, buffer []core.Vec4, width, height int) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("failed to write ppm header: %w", err)
	}

	for _, col := range buffer {
		r, g, b, _ := EncodeRGBA8(col, true)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("failed to write ppm pixel: %w", err)
		}
	}

	return bw.Flush()
}
