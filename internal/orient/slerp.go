package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Below this squared sine of the half angle the slerp weights lose precision,
// so Slerp blends linearly and renormalizes instead.
const nlerpThreshold = 0.001

// Identity is the rotation that leaves every vector unchanged.
func Identity() mgl64.Quat {
	return mgl64.QuatIdent()
}

// New builds a quaternion from components in x, y, z, w order.
func New(x, y, z, w float64) mgl64.Quat {
	return mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}
}

// Components returns q as [x, y, z, w].
func Components(q mgl64.Quat) [4]float64 {
	return [4]float64{q.V[0], q.V[1], q.V[2], q.W}
}

// Slerp moves from toward to along the shortest arc by fraction t.
// t <= 0 (or NaN) returns from; t >= 1 returns to exactly.
func Slerp(from, to mgl64.Quat, t float64) mgl64.Quat {
	if !(t > 0) {
		return from
	}
	if t >= 1 {
		return to
	}

	cosHalfTheta := from.Dot(to)
	if cosHalfTheta < 0 {
		to = to.Scale(-1)
		cosHalfTheta = -cosHalfTheta
	}
	if cosHalfTheta >= 1 {
		return from
	}

	sqrSinHalfTheta := 1 - cosHalfTheta*cosHalfTheta
	if sqrSinHalfTheta < nlerpThreshold {
		return mgl64.QuatNlerp(from, to, t)
	}

	sinHalfTheta := math.Sqrt(sqrSinHalfTheta)
	halfTheta := math.Atan2(sinHalfTheta, cosHalfTheta)
	ratioA := math.Sin((1-t)*halfTheta) / sinHalfTheta
	ratioB := math.Sin(t*halfTheta) / sinHalfTheta

	return from.Scale(ratioA).Add(to.Scale(ratioB))
}

// Normalize scales q to unit length. ok is false when q has zero length
// (or non-finite components), in which case q is returned unchanged.
func Normalize(q mgl64.Quat) (mgl64.Quat, bool) {
	length := q.Len()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return q, false
	}
	return q.Scale(1 / length), true
}
