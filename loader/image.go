// Copyright © 2013-2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package loader

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // side-effect registers the "jpeg" format with image.Decode
	_ "image/png"  // side-effect registers the "png" format with image.Decode
	"io"

	_ "golang.org/x/image/bmp" // side-effect registers the "bmp" format
)

// DecodeImage decodes r (PNG, JPEG, or BMP, sniffed from its header,
// per spec.md §4.7's image loader list) into a tightly packed RGBA
// pixel buffer ready for render.Renderer.CreateTexture. Generalizes
// the teacher's load/png.go (a single format, decoded straight into
// image.Image for the 3D texture pipeline to consume as-is) into a
// format-agnostic entry point that always normalizes to 4-channel RGBA,
// since qu's 2D renderer only distinguishes texture channel counts for
// glyph atlases (1-channel alpha), not for loaded images.
func DecodeImage(r io.Reader) (width, height, channels int, pixels []byte, err error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return 0, 0, 0, nil, fmt.Errorf("loader: decode image: %w", err)
	}
	_ = format

	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return width, height, 4, rgba.Pix, nil
}
