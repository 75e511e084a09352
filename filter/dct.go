package filter

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/Praveen47Billion/pdfbox/color"
	"github.com/Praveen47Billion/pdfbox/jpegmeta"
)

// DCTFilter decompresses data encoded with a DCT (discrete cosine transform)
// technique based on the JPEG standard, then normalises the decoded samples
// to the channel order and semantics the rest of the pipeline expects: RGB
// for three band rasters, CMYK for four band ones. The actual JPEG decoding
// is delegated to a registered RasterDecoder.
type DCTFilter struct {
	registry *DecoderRegistry
}

// NewDCTFilter builds a DCT filter on the given registry. A nil registry
// means DefaultRegistry.
func NewDCTFilter(registry *DecoderRegistry) *DCTFilter {
	if registry == nil {
		registry = DefaultRegistry
	}
	return &DCTFilter{registry: registry}
}

// Decode reads one complete JPEG stream from input and writes the packed,
// row-major, band-interleaved raster to output. Nothing is written when an
// error is returned.
func (f *DCTFilter) Decode(input io.Reader, output io.Writer, opts *DecodeOptions, filterIndex int) (*DecodeResult, error) {
	decoder, err := f.registry.FirstCapable()
	if err != nil {
		log.Errorf("DCT filter %d: %v", filterIndex, err)
		return nil, err
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("DCT filter %d: read stream: %w", filterIndex, err)
	}

	img, err := decoder.DecodeRaster(data)
	if err != nil {
		return nil, fmt.Errorf("DCT filter %d: decode: %w", filterIndex, err)
	}

	var warnings []color.Warning
	transform := color.TransformUnknown
	if img.Bands == 4 {
		policy := jpegmeta.DefaultTransformPolicy()
		if opts != nil && opts.Policy != nil {
			policy = *opts.Policy
		}
		meta, metaErr := decoder.Metadata(data)
		var resolveWarnings []color.Warning
		transform, resolveWarnings, err = policy.Resolve(meta, metaErr)
		if err != nil {
			return nil, fmt.Errorf("DCT filter %d: metadata: %w", filterIndex, err)
		}
		warnings = append(warnings, resolveWarnings...)
	}

	corrected, correctWarnings := color.Correct(img, transform)
	warnings = append(warnings, correctWarnings...)

	if _, err := output.Write(corrected.Pix); err != nil {
		return nil, fmt.Errorf("DCT filter %d: write raster: %w", filterIndex, err)
	}

	return &DecodeResult{
		Width:    corrected.Width,
		Height:   corrected.Height,
		Bands:    corrected.Bands,
		Warnings: warnings,
	}, nil
}

// Encode is not implemented for the DCT filter. The stream is skipped and
// nothing is written; callers treat this as a capability gap, not an error.
func (f *DCTFilter) Encode(input io.Reader, output io.Writer, opts *DecodeOptions, filterIndex int) error {
	log.Warnf("DCT filter encode is not implemented yet, skipping stream %d", filterIndex)
	return nil
}
