package spatial

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Identity is the rotation that leaves vectors unchanged.
var Identity = r3.Rotation{Real: 1}

// Frame is a position with an orientation. The zero Frame sits at the origin
// facing forward.
type Frame struct {
	Position    r3.Vec
	Orientation r3.Rotation
}

// NewFrame returns a frame at pos with orientation rot. rot is normalized; a
// zero rotation is treated as Identity.
func NewFrame(pos r3.Vec, rot r3.Rotation) Frame {
	return Frame{Position: pos, Orientation: normalizeRotation(rot)}
}

// FrameFromEuler returns a frame at pos rotated by yaw about Up, pitch about
// Right and roll about Forward, all in degrees. Roll is applied first and yaw
// last.
func FrameFromEuler(pos r3.Vec, yaw, pitch, roll float64) Frame {
	q := quat.Mul(
		quat.Number(r3.NewRotation(Radians(yaw), Up)),
		quat.Mul(
			quat.Number(r3.NewRotation(Radians(pitch), Right)),
			quat.Number(r3.NewRotation(Radians(roll), Forward)),
		),
	)
	return NewFrame(pos, r3.Rotation(q))
}

// ToLocal expresses the world-space direction v in the frame's local axes.
func (f Frame) ToLocal(v r3.Vec) r3.Vec {
	rot := normalizeRotation(f.Orientation)
	if rot == Identity {
		return v
	}
	return r3.Rotation(quat.Conj(quat.Number(rot))).Rotate(v)
}

// ToWorld expresses the local direction v in world axes.
func (f Frame) ToWorld(v r3.Vec) r3.Vec {
	rot := normalizeRotation(f.Orientation)
	if rot == Identity {
		return v
	}
	return rot.Rotate(v)
}

func normalizeRotation(rot r3.Rotation) r3.Rotation {
	q := quat.Number(rot)
	n := quat.Abs(q)
	if n == 0 {
		return Identity
	}
	return r3.Rotation(quat.Scale(1/n, q))
}
