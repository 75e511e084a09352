package filter

import (
	"io"

	"github.com/Praveen47Billion/pdfbox/color"
	"github.com/Praveen47Billion/pdfbox/jpegmeta"
)

// Filter decodes or encodes one stream of a document. filterIndex is the
// position of the filter in the stream's filter chain and is only used for
// error and log context.
type Filter interface {
	Decode(input io.Reader, output io.Writer, opts *DecodeOptions, filterIndex int) (*DecodeResult, error)
	Encode(input io.Reader, output io.Writer, opts *DecodeOptions, filterIndex int) error
}

// DecodeOptions carries decode parameters from the enclosing document.
type DecodeOptions struct {
	// Params holds the raw decode parameter dictionary. The DCT filter does
	// not consult it, the entries pass through for filters that do.
	Params map[string]any

	// Policy overrides how the colour transform of a four band raster is
	// resolved. Nil means jpegmeta.DefaultTransformPolicy.
	Policy *jpegmeta.TransformPolicy
}

// DecodeResult reports the shape of the raster written to the output along
// with any recoverable conditions encountered on the way.
type DecodeResult struct {
	Width    int32
	Height   int32
	Bands    int32
	Warnings []color.Warning
}
