package color

// Transform is the Adobe APP14 colour transform code carried by a JPEG
// stream. It governs how the channels of a four band raster are encoded.
type Transform int32

const (
	TransformUnknown Transform = 0
	TransformYCbCr   Transform = 1
	TransformYCCK    Transform = 2
)

func (t Transform) String() string {
	switch t {
	case TransformUnknown:
		return "Unknown"
	case TransformYCbCr:
		return "YCbCr"
	case TransformYCCK:
		return "YCCK"
	}
	return "Invalid"
}

// WarningCode identifies a recognized recoverable condition.
type WarningCode int32

const (
	WarnYCbCrUnsupported WarningCode = iota + 1
	WarnInconsistentMetadata
	WarnEncodeUnsupported
)

// Warning records a condition that was recovered from rather than surfaced
// as an error. Callers aggregate these so tests and diagnostics can inspect
// exactly which fallbacks fired during a decode.
type Warning struct {
	Code    WarningCode
	Message string
}
