// Package spatial converts tracked positions into the coordinate tuples sent
// to an OSC listener.
//
// Positions use a left-handed, Y-up convention: X is right, Y is up and Z is
// forward.
package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	Right   = r3.Vec{X: 1}
	Up      = r3.Vec{Y: 1}
	Forward = r3.Vec{Z: 1}
)

// Magnitude returns the Euclidean length of v.
func Magnitude(v r3.Vec) float64 {
	return r3.Norm(v)
}

// Normalize returns the unit vector in the direction of v, or the zero vector
// if v has no length.
func Normalize(v r3.Vec) r3.Vec {
	if r3.Norm2(v) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(v)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Azimuth is the horizontal angle of v in degrees, measured from the forward
// axis toward the right axis.
func Azimuth(v r3.Vec) float64 {
	return Degrees(math.Atan2(v.X, v.Z))
}

// Elevation is the angle of v above the horizontal plane in degrees. It is
// always within [-90, 90]; the zero vector has elevation 0.
func Elevation(v r3.Vec) float64 {
	return Degrees(math.Asin(Clamp(Normalize(v).Y, -1, 1)))
}
