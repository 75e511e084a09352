package filter

import "errors"

var (
	// ErrMissingDecoderCapability means no registered decoder can produce
	// raw raster data. This is an environment fault, not a stream fault:
	// retrying the same stream cannot succeed.
	ErrMissingDecoderCapability = errors.New("filter: cannot read JPEG image: no registered decoder can produce raster data")
)
