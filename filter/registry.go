package filter

import (
	"github.com/Praveen47Billion/pdfbox/jpegmeta"
	"github.com/Praveen47Billion/pdfbox/raster"
)

// RasterDecoder is a JPEG decoder able to hand back the raw per-pixel
// samples of an image. Three band rasters are presented in BGR channel
// order; four band rasters carry the CMYK family samples exactly as stored
// in the stream, with no colour transform applied.
type RasterDecoder interface {
	// CanDecodeRaster reports whether the decoder can produce raw raster
	// data at all. Decoders that only produce display-ready images say no.
	CanDecodeRaster() bool

	// DecodeRaster decodes a complete JPEG stream into a raster.
	DecodeRaster(data []byte) (*raster.Raster, error)

	// Metadata returns the parsed marker segments of the stream.
	Metadata(data []byte) (*jpegmeta.Metadata, error)
}

// DecoderRegistry is an ordered collection of decoders. Selection walks the
// registration order and picks the first decoder that can produce raster
// data. The registry is not safe for concurrent mutation: register decoders
// during initialisation, before any decode runs.
type DecoderRegistry struct {
	decoders []RasterDecoder
}

func NewDecoderRegistry(decoders ...RasterDecoder) *DecoderRegistry {
	return &DecoderRegistry{decoders: decoders}
}

func (r *DecoderRegistry) Register(d RasterDecoder) {
	r.decoders = append(r.decoders, d)
}

// FirstCapable returns the first registered decoder that can produce raster
// data, or ErrMissingDecoderCapability if none qualifies.
func (r *DecoderRegistry) FirstCapable() (RasterDecoder, error) {
	for _, d := range r.decoders {
		if d.CanDecodeRaster() {
			return d, nil
		}
	}
	return nil, ErrMissingDecoderCapability
}

// DefaultRegistry is the registry used by filters constructed without one.
var DefaultRegistry = NewDecoderRegistry()
