// Package jpegdec provides the default raster decoder for the DCT filter.
// Entropy decoding, inverse DCT and chroma upsampling are delegated to the
// jpegn decoding library; this package only repacks the decoded image into
// an interleaved raster and parses the marker metadata.
package jpegdec

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gen2brain/jpegn"

	"github.com/Praveen47Billion/pdfbox/jpegmeta"
	"github.com/Praveen47Billion/pdfbox/raster"
)

type Decoder struct {
	// Upsample selects the chroma upsampling method of the underlying
	// library. The zero value is its fast nearest-neighbour mode.
	Upsample jpegn.UpsampleMethod
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

func (d *Decoder) CanDecodeRaster() bool {
	return true
}

func (d *Decoder) Metadata(data []byte) (*jpegmeta.Metadata, error) {
	return jpegmeta.Parse(data)
}

func (d *Decoder) DecodeRaster(data []byte) (*raster.Raster, error) {
	img, err := jpegn.Decode(bytes.NewReader(data), &jpegn.Options{UpsampleMethod: d.Upsample})
	if err != nil {
		return nil, fmt.Errorf("jpegdec: %w", err)
	}
	return rasterize(img)
}

// rasterize repacks a decoded image into an interleaved raster. Grayscale
// keeps its single band, CMYK family images keep four bands as decoded, and
// everything else becomes a three band raster in BGR order per the
// RasterDecoder contract.
func rasterize(img image.Image) (*raster.Raster, error) {
	bounds := img.Bounds()
	width := int32(bounds.Dx())
	height := int32(bounds.Dy())

	switch src := img.(type) {
	case *image.Gray:
		out, err := raster.NewRaster(width, height, 1)
		if err != nil {
			return nil, err
		}
		for y := 0; y < int(height); y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(out.Pix[y*int(width):(y+1)*int(width)], src.Pix[off:off+int(width)])
		}
		return out, nil

	case *image.CMYK:
		out, err := raster.NewRaster(width, height, 4)
		if err != nil {
			return nil, err
		}
		rowLen := int(width) * 4
		for y := 0; y < int(height); y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(out.Pix[y*rowLen:(y+1)*rowLen], src.Pix[off:off+rowLen])
		}
		return out, nil

	default:
		out, err := raster.NewRaster(width, height, 3)
		if err != nil {
			return nil, err
		}
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				out.Pix[i] = uint8(b >> 8)
				out.Pix[i+1] = uint8(g >> 8)
				out.Pix[i+2] = uint8(r >> 8)
				i += 3
			}
		}
		return out, nil
	}
}
