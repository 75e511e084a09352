package jpegmeta

// JPEG marker bytes the metadata parser cares about.
const (
	markerTEM  = 0x01
	markerDHT  = 0xc4
	markerJPG  = 0xc8
	markerDAC  = 0xcc
	markerRST0 = 0xd0
	markerRST7 = 0xd7
	markerSOI  = 0xd8
	markerEOI  = 0xd9
	markerSOS  = 0xda

	markerAPP0  = 0xe0
	markerAPP14 = 0xee
)

// Segment is one parsed marker segment. Known marker kinds get their own
// concrete type so callers work against parsed fields instead of poking at
// raw bytes; anything the parser does not model ends up as a RawSegment.
type Segment interface {
	Marker() uint8
}

// AdobeSegment is the APP14 segment written by Adobe applications. Its
// transform field declares how the colour channels of the scan are encoded.
type AdobeSegment struct {
	Version   uint16
	Flags0    uint16
	Flags1    uint16
	Transform uint8
}

func (s AdobeSegment) Marker() uint8 { return markerAPP14 }

// JFIFSegment is the APP0 JFIF header.
type JFIFSegment struct {
	VersionMajor uint8
	VersionMinor uint8
	Units        uint8
	XDensity     uint16
	YDensity     uint16
}

func (s JFIFSegment) Marker() uint8 { return markerAPP0 }

// FrameComponent is one component entry of a frame header.
type FrameComponent struct {
	ID         uint8
	HSampling  uint8
	VSampling  uint8
	QuantTable uint8
}

// FrameSegment is a start-of-frame header (any SOFn variant).
type FrameSegment struct {
	marker     uint8
	Precision  uint8
	Height     uint16
	Width      uint16
	Components []FrameComponent
}

func (s FrameSegment) Marker() uint8 { return s.marker }

// Progressive reports whether the frame uses a progressive scan order.
func (s FrameSegment) Progressive() bool {
	switch s.marker {
	case 0xc2, 0xc6, 0xca, 0xce:
		return true
	}
	return false
}

// RawSegment is a marker segment the parser keeps but does not interpret.
type RawSegment struct {
	marker uint8
	Data   []byte
}

func (s RawSegment) Marker() uint8 { return s.marker }

// Metadata is the parsed marker sequence of one image, in stream order.
type Metadata struct {
	Segments []Segment
}

// Adobe returns the first APP14 Adobe segment, if any.
func (m *Metadata) Adobe() (*AdobeSegment, bool) {
	for _, seg := range m.Segments {
		if adobe, ok := seg.(AdobeSegment); ok {
			return &adobe, true
		}
	}
	return nil, false
}

// Frame returns the first start-of-frame segment, if any.
func (m *Metadata) Frame() (*FrameSegment, bool) {
	for _, seg := range m.Segments {
		if frame, ok := seg.(FrameSegment); ok {
			return &frame, true
		}
	}
	return nil, false
}
