package jpegmeta

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/Praveen47Billion/pdfbox/color"
)

// TransformPolicy decides which colour transform applies to a four band
// raster based on the image metadata, including what to do when the
// metadata cannot be read.
type TransformPolicy struct {
	// AssumeYCCKOnInconsistentMetadata recovers from ErrInconsistentMetadata
	// by treating the image as YCCK encoded. Streams with metadata broken in
	// that particular way have mostly turned out to be YCCK images, but the
	// correlation is a heuristic, which is why it can be switched off.
	AssumeYCCKOnInconsistentMetadata bool
}

// DefaultTransformPolicy returns the policy used when callers pass none.
func DefaultTransformPolicy() TransformPolicy {
	return TransformPolicy{AssumeYCCKOnInconsistentMetadata: true}
}

// Resolve maps parsed metadata, or the error produced while reading it, to a
// colour transform code. A present Adobe APP14 segment wins; a missing one
// means Unknown. A metadata read failure matching ErrInconsistentMetadata is
// recovered per the policy and reported as a warning instead of an error;
// any other failure propagates.
func (p TransformPolicy) Resolve(meta *Metadata, metaErr error) (color.Transform, []color.Warning, error) {
	if metaErr != nil {
		if errors.Is(metaErr, ErrInconsistentMetadata) && p.AssumeYCCKOnInconsistentMetadata {
			log.Warnf("Inconsistent metadata read from JPEG stream, assuming YCCK")
			return color.TransformYCCK, []color.Warning{{
				Code:    color.WarnInconsistentMetadata,
				Message: "inconsistent metadata read from JPEG stream, assuming YCCK",
			}}, nil
		}
		return color.TransformUnknown, nil, metaErr
	}
	if adobe, ok := meta.Adobe(); ok {
		return color.Transform(adobe.Transform), nil, nil
	}
	return color.TransformUnknown, nil, nil
}
