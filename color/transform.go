package color

import (
	log "github.com/sirupsen/logrus"

	"github.com/Praveen47Billion/pdfbox/raster"
	"github.com/Praveen47Billion/pdfbox/util"
)

// Correct returns a raster whose channels carry the canonical semantics for
// its band count: RGB for three bands, CMYK for four. The transform code is
// only consulted for four band rasters. Band counts without a defined
// transform pass through unchanged.
func Correct(img *raster.Raster, transform Transform) (*raster.Raster, []Warning) {
	switch img.Bands {
	case 3:
		return BGRToRGB(img), nil
	case 4:
		switch transform {
		case TransformYCbCr:
			log.Warnf("YCbCr JPEGs not implemented")
			return img, []Warning{{Code: WarnYCbCrUnsupported, Message: "YCbCr JPEGs not implemented"}}
		case TransformYCCK:
			return YCCKToCMYK(img), nil
		}
		// already CMYK
		return img, nil
	}
	return img, nil
}

// YCCKToCMYK converts a YCCK raster to CMYK. YCCK is an equivalent encoding
// for CMYK data, so no colour management is involved: the Y/Cb/Cr channels
// are turned back into RGB, inverted to CMY, and the K channel is carried
// through untouched. The intermediate RGB values are computed in floating
// point, clamped to [0,255] and truncated before inversion.
func YCCKToCMYK(img *raster.Raster) *raster.Raster {
	out := img.Compatible()
	for i := 0; i < len(img.Pix); i += 4 {
		y := float32(img.Pix[i])
		cb := float32(img.Pix[i+1])
		cr := float32(img.Pix[i+2])

		// YCCK to RGB, see https://software.intel.com/en-us/node/442744
		r := clamp(y + 1.402*cr - 179.456)
		g := clamp(y - 0.34414*cb - 0.71414*cr + 135.45984)
		b := clamp(y + 1.772*cb - 226.816)

		// naive RGB to CMYK
		out.Pix[i] = uint8(255 - r)
		out.Pix[i+1] = uint8(255 - g)
		out.Pix[i+2] = uint8(255 - b)
		out.Pix[i+3] = img.Pix[i+3]
	}
	return out
}

// BGRToRGB swaps the first and third band of a three band raster. This is a
// pure permutation, no sample values change.
func BGRToRGB(img *raster.Raster) *raster.Raster {
	out := img.Compatible()
	for i := 0; i < len(img.Pix); i += 3 {
		out.Pix[i] = img.Pix[i+2]
		out.Pix[i+1] = img.Pix[i+1]
		out.Pix[i+2] = img.Pix[i]
	}
	return out
}

// clamp limits value to the 0-255 range, truncating toward zero.
func clamp(value float32) int32 {
	return int32(util.Clamp(value, 0, 255))
}
