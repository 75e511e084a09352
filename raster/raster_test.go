package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaster(t *testing.T) {
	r, err := NewRaster(3, 2, 4)
	require.NoError(t, err)
	assert.Len(t, r.Pix, 24)

	_, err = NewRaster(0, 2, 4)
	assert.Error(t, err)
	_, err = NewRaster(3, -1, 4)
	assert.Error(t, err)
}

func TestNewRasterWithPix(t *testing.T) {
	pix := []uint8{1, 2, 3, 4, 5, 6}
	r, err := NewRasterWithPix(2, 1, 3, pix)
	require.NoError(t, err)
	assert.Equal(t, pix, r.Pix)

	_, err = NewRasterWithPix(2, 2, 3, pix)
	assert.Error(t, err)
}

func TestPixelOffset(t *testing.T) {
	r, err := NewRaster(4, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, r.PixelOffset(0, 0))
	assert.Equal(t, 9, r.PixelOffset(3, 0))
	assert.Equal(t, 12, r.PixelOffset(0, 1))
	assert.Equal(t, 33, r.PixelOffset(3, 2))
}

func TestCompatible(t *testing.T) {
	r, err := NewRasterWithPix(1, 1, 4, []uint8{10, 20, 30, 40})
	require.NoError(t, err)

	c := r.Compatible()
	assert.Equal(t, r.Width, c.Width)
	assert.Equal(t, r.Height, c.Height)
	assert.Equal(t, r.Bands, c.Bands)
	assert.Equal(t, []uint8{0, 0, 0, 0}, c.Pix)
}

func TestEquals(t *testing.T) {
	a, _ := NewRasterWithPix(2, 1, 3, []uint8{1, 2, 3, 4, 5, 6})
	b, _ := NewRasterWithPix(2, 1, 3, []uint8{1, 2, 3, 4, 5, 6})
	c, _ := NewRasterWithPix(2, 1, 3, []uint8{1, 2, 3, 4, 5, 7})
	d, _ := NewRasterWithPix(1, 2, 3, []uint8{1, 2, 3, 4, 5, 6})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(d))
	assert.False(t, a.Equals(nil))
}
