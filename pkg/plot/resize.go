package plot

import (
	"image"

	"golang.org/x/image/draw"
)

// resize scales src to fill dst.
func resize(dst *image.RGBA, src image.Image) {
	s := draw.BiLinear
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}
