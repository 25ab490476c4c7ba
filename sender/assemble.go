package sender

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chabad360/go-osc-tracker/osc"
	"github.com/chabad360/go-osc-tracker/spatial"
)

// Kind selects the coordinate encoding of position messages.
type Kind int

const (
	XYZ Kind = iota
	AED
)

// PositionTypeTags is the tag string shared by XYZ and AED messages:
// label, index, three coordinates, group.
const PositionTypeTags = ",sifffi"

func (k Kind) String() string {
	switch k {
	case XYZ:
		return "xyz"
	case AED:
		return "aed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "xyz" or "aed", ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "xyz":
		return XYZ, nil
	case "aed":
		return AED, nil
	default:
		return 0, fmt.Errorf("unknown coordinate system %q", s)
	}
}

// Assemble builds the message for one transformed position. The tuple is
// already in wire order: (x, z, y) for XYZ and (azimuth, elevation,
// distance) for AED.
func Assemble(address string, kind Kind, tuple [3]float64, index, group int) (*osc.Message, error) {
	if kind != XYZ && kind != AED {
		return nil, &osc.EncodingError{Shape: kind.String()}
	}
	if !fitsInt32(index) {
		return nil, &osc.EncodingError{Shape: fmt.Sprintf("index %d", index)}
	}
	if !fitsInt32(group) {
		return nil, &osc.EncodingError{Shape: fmt.Sprintf("group %d", group)}
	}

	return osc.NewMessage(address,
		kind.String(),
		int32(index),
		float32(tuple[0]),
		float32(tuple[1]),
		float32(tuple[2]),
		int32(group),
	), nil
}

// Transform converts p into the tuple for kind. ref may be nil, in which case
// self is the reference for AED.
func Transform(kind Kind, p r3.Vec, ref *spatial.Frame, self spatial.Frame) [3]float64 {
	if kind == AED {
		return spatial.ToAED(p, ref, self).Tuple()
	}
	return spatial.XYZTuple(p)
}

// Batch describes how a list of positions is numbered and transformed.
type Batch struct {
	Address   string
	Kind      Kind
	Reference *spatial.Frame
	Self      spatial.Frame
	// IndexBase is added to each position's array index.
	IndexBase int
	// Group, when set, is sent for every position; otherwise each position's
	// group equals its index.
	Group *int
}

// AssembleBatch builds one message per position, in order. Entries that fail
// are reported in errs and skipped; the rest are still built. No positions
// means no messages.
func AssembleBatch(b Batch, positions []r3.Vec) (msgs []*osc.Message, errs []error) {
	if len(positions) == 0 {
		return nil, nil
	}

	msgs = make([]*osc.Message, 0, len(positions))
	for i, p := range positions {
		index := b.IndexBase + i
		group := index
		if b.Group != nil {
			group = *b.Group
		}

		msg, err := Assemble(b.Address, b.Kind, Transform(b.Kind, p, b.Reference, b.Self), index, group)
		if err != nil {
			errs = append(errs, &EntityError{Index: i, Err: err})
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs, errs
}

func fitsInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
