package testcommon

import (
	"github.com/Praveen47Billion/pdfbox/jpegmeta"
	"github.com/Praveen47Billion/pdfbox/raster"
)

// FakeRasterDecoder is a canned-response decoder for filter tests. Populate
// the fields with whatever the test needs the decoder to hand back.
type FakeRasterDecoder struct {
	Capable   bool
	Raster    *raster.Raster
	DecodeErr error
	Meta      *jpegmeta.Metadata
	MetaErr   error

	DecodeCalls   int
	MetadataCalls int
}

func NewFakeRasterDecoder(img *raster.Raster) *FakeRasterDecoder {
	return &FakeRasterDecoder{Capable: true, Raster: img}
}

func (f *FakeRasterDecoder) CanDecodeRaster() bool {
	return f.Capable
}

func (f *FakeRasterDecoder) DecodeRaster(data []byte) (*raster.Raster, error) {
	f.DecodeCalls++
	if f.DecodeErr != nil {
		return nil, f.DecodeErr
	}
	return f.Raster, nil
}

func (f *FakeRasterDecoder) Metadata(data []byte) (*jpegmeta.Metadata, error) {
	f.MetadataCalls++
	return f.Meta, f.MetaErr
}
