// Copyright © 2013-2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package loader

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImagePNGRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 1, color.RGBA{G: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	width, height, channels, pixels, err := DecodeImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, width)
	assert.Equal(t, 3, height)
	assert.Equal(t, 4, channels)
	assert.Len(t, pixels, 4*3*4)
	assert.Equal(t, byte(255), pixels[0]) // R of (0,0)
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, _, _, _, err := DecodeImage(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)
}
