package raster

import (
	"bytes"
	"fmt"
)

// Raster is a rectangular grid of pixels with interleaved 8 bit samples.
// Pix is packed row-major: the sample for (x, y, band) lives at
// (y*Width+x)*Bands + band. A decoder produces one Raster per decode call
// and nothing holds onto it once its bytes have been written out, so no
// pooling or sharing between calls happens here.
type Raster struct {
	Width  int32
	Height int32
	Bands  int32
	Pix    []uint8
}

func NewRaster(width int32, height int32, bands int32) (*Raster, error) {
	if width <= 0 || height <= 0 || bands <= 0 {
		return nil, fmt.Errorf("raster: invalid dimensions %dx%dx%d", width, height, bands)
	}
	return &Raster{
		Width:  width,
		Height: height,
		Bands:  bands,
		Pix:    make([]uint8, int(width)*int(height)*int(bands)),
	}, nil
}

// NewRasterWithPix wraps an existing interleaved sample buffer. The buffer
// length has to be exactly width*height*bands.
func NewRasterWithPix(width int32, height int32, bands int32, pix []uint8) (*Raster, error) {
	r, err := NewRaster(width, height, bands)
	if err != nil {
		return nil, err
	}
	if len(pix) != len(r.Pix) {
		return nil, fmt.Errorf("raster: buffer length %d does not match %dx%dx%d", len(pix), width, height, bands)
	}
	r.Pix = pix
	return r, nil
}

// Compatible allocates an empty raster with the same shape as r.
func (r *Raster) Compatible() *Raster {
	return &Raster{
		Width:  r.Width,
		Height: r.Height,
		Bands:  r.Bands,
		Pix:    make([]uint8, len(r.Pix)),
	}
}

// PixelOffset returns the index of the first sample of pixel (x, y).
func (r *Raster) PixelOffset(x int32, y int32) int {
	return (int(y)*int(r.Width) + int(x)) * int(r.Bands)
}

// Equals compares two rasters and returns true if shape and samples match.
func (r *Raster) Equals(other *Raster) bool {
	if other == nil {
		return false
	}
	if r.Width != other.Width || r.Height != other.Height || r.Bands != other.Bands {
		return false
	}
	return bytes.Equal(r.Pix, other.Pix)
}
