package jpegmeta

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	bst "github.com/mixcode/binarystruct"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotJPEG = errors.New("jpegmeta: start-of-image marker not found")

	// ErrInconsistentMetadata flags a stream that starts out as a valid JPEG
	// but whose marker sequence cannot be read to completion. Other decoders
	// may still manage to decode the scan data of such a stream.
	ErrInconsistentMetadata = errors.New("jpegmeta: inconsistent metadata read from stream")
)

// Parse walks the marker sequence of a JPEG stream up to start-of-scan and
// returns the parsed segments. Entropy coded data is never touched.
func Parse(data []byte) (*Metadata, error) {
	in := bytes.NewReader(data)

	buf := make([]byte, 2)
	if _, err := io.ReadFull(in, buf); err != nil {
		return nil, ErrNotJPEG
	}
	if buf[0] != 0xff || buf[1] != markerSOI {
		return nil, ErrNotJPEG
	}

	meta := &Metadata{}
	for {
		if _, err := io.ReadFull(in, buf); err != nil {
			return nil, fmt.Errorf("%w: truncated marker sequence", ErrInconsistentMetadata)
		}
		if buf[0] != 0xff {
			log.Warnf("unaligned segment header in JPEG stream")
			for buf[0] != 0xff {
				buf[0] = buf[1]
				if _, err := io.ReadFull(in, buf[1:2]); err != nil {
					return nil, fmt.Errorf("%w: truncated marker sequence", ErrInconsistentMetadata)
				}
			}
		}
		// 0xff bytes may pad between segments
		for buf[1] == 0xff {
			if _, err := io.ReadFull(in, buf[1:2]); err != nil {
				return nil, fmt.Errorf("%w: truncated marker sequence", ErrInconsistentMetadata)
			}
		}
		marker := buf[1]

		if marker == markerEOI || marker == markerSOS {
			break
		}
		if marker == markerTEM || (marker >= markerRST0 && marker <= markerRST7) {
			// standalone markers carry no payload
			continue
		}
		if marker == 0x00 {
			return nil, fmt.Errorf("%w: stuffed byte in marker sequence", ErrInconsistentMetadata)
		}

		var segLen uint16
		if _, err := bst.Read(in, bst.BigEndian, &segLen); err != nil {
			return nil, fmt.Errorf("%w: segment 0x%02x has no length", ErrInconsistentMetadata, marker)
		}
		if segLen < 2 {
			return nil, fmt.Errorf("%w: segment 0x%02x has length %d", ErrInconsistentMetadata, marker, segLen)
		}
		body := make([]byte, segLen-2)
		if _, err := io.ReadFull(in, body); err != nil {
			return nil, fmt.Errorf("%w: segment 0x%02x truncated", ErrInconsistentMetadata, marker)
		}

		seg, err := parseSegment(marker, body)
		if err != nil {
			return nil, err
		}
		meta.Segments = append(meta.Segments, seg)
	}
	return meta, nil
}

func parseSegment(marker uint8, body []byte) (Segment, error) {
	switch {
	case marker == markerAPP14 && bytes.HasPrefix(body, []byte("Adobe")):
		return parseAdobe(body)
	case marker == markerAPP0 && bytes.HasPrefix(body, []byte("JFIF\x00")):
		return parseJFIF(body)
	case isFrameMarker(marker):
		return parseFrame(marker, body)
	}
	return RawSegment{marker: marker, Data: body}, nil
}

func parseAdobe(body []byte) (Segment, error) {
	var seg struct {
		Version   uint16
		Flags0    uint16
		Flags1    uint16
		Transform uint8
	}
	if _, err := bst.Read(bytes.NewReader(body[5:]), bst.BigEndian, &seg); err != nil {
		return nil, fmt.Errorf("%w: truncated Adobe APP14 segment", ErrInconsistentMetadata)
	}
	return AdobeSegment{
		Version:   seg.Version,
		Flags0:    seg.Flags0,
		Flags1:    seg.Flags1,
		Transform: seg.Transform,
	}, nil
}

func parseJFIF(body []byte) (Segment, error) {
	var seg struct {
		VersionMajor uint8
		VersionMinor uint8
		Units        uint8
		XDensity     uint16
		YDensity     uint16
	}
	if _, err := bst.Read(bytes.NewReader(body[5:]), bst.BigEndian, &seg); err != nil {
		return nil, fmt.Errorf("%w: truncated JFIF APP0 segment", ErrInconsistentMetadata)
	}
	return JFIFSegment{
		VersionMajor: seg.VersionMajor,
		VersionMinor: seg.VersionMinor,
		Units:        seg.Units,
		XDensity:     seg.XDensity,
		YDensity:     seg.YDensity,
	}, nil
}

func parseFrame(marker uint8, body []byte) (Segment, error) {
	in := bytes.NewReader(body)
	var hdr struct {
		Precision  uint8
		Height     uint16
		Width      uint16
		Components uint8
	}
	if _, err := bst.Read(in, bst.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: truncated frame header", ErrInconsistentMetadata)
	}

	seg := FrameSegment{
		marker:    marker,
		Precision: hdr.Precision,
		Height:    hdr.Height,
		Width:     hdr.Width,
	}
	for i := 0; i < int(hdr.Components); i++ {
		var comp struct {
			ID         uint8
			Sampling   uint8
			QuantTable uint8
		}
		if _, err := bst.Read(in, bst.BigEndian, &comp); err != nil {
			return nil, fmt.Errorf("%w: truncated frame component %d", ErrInconsistentMetadata, i)
		}
		seg.Components = append(seg.Components, FrameComponent{
			ID:         comp.ID,
			HSampling:  comp.Sampling >> 4,
			VSampling:  comp.Sampling & 0x0f,
			QuantTable: comp.QuantTable,
		})
	}
	return seg, nil
}

// isFrameMarker reports whether marker is an SOFn variant. DHT, JPG and DAC
// sit inside the SOF range but are not frame headers.
func isFrameMarker(marker uint8) bool {
	if marker < 0xc0 || marker > 0xcf {
		return false
	}
	switch marker {
	case markerDHT, markerJPG, markerDAC:
		return false
	}
	return true
}
