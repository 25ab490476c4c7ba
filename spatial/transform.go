package spatial

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// ToXYZ returns p as (x, z, y). The listener treats the second channel as
// depth and the third as height, so the source Y and Z are transposed.
func ToXYZ(p r3.Vec) (x, z, y float64) {
	return p.X, p.Z, p.Y
}

// AED is a position relative to a reference frame: azimuth and elevation in
// degrees, distance in world units.
type AED struct {
	Azimuth   float64
	Elevation float64
	Distance  float64
}

// Tuple returns the AED in wire order.
func (a AED) Tuple() [3]float64 {
	return [3]float64{a.Azimuth, a.Elevation, a.Distance}
}

// ToAED returns p relative to ref. When ref is nil, self is used instead. A
// position on top of the reference has azimuth and elevation 0.
func ToAED(p r3.Vec, ref *Frame, self Frame) AED {
	frame := self
	if ref != nil {
		frame = *ref
	}

	difference := r3.Sub(p, frame.Position)
	distance := Magnitude(difference)
	if distance == 0 {
		return AED{}
	}

	local := frame.ToLocal(difference)
	return AED{
		Azimuth:   Azimuth(local),
		Elevation: Elevation(local),
		Distance:  distance,
	}
}

// XYZTuple returns ToXYZ(p) in wire order.
func XYZTuple(p r3.Vec) [3]float64 {
	x, z, y := ToXYZ(p)
	return [3]float64{x, z, y}
}
