package core

import "math"

// ONB is an orthonormal basis. W is aligned with the direction the basis
// was built from, V = W × helper and U = W × V.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds a basis whose W axis is the normalized n.
// The helper axis switches away from X when n is nearly parallel to it.
func NewONB(n Vec3) ONB {
	w := n.Normalize()
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Transform maps a vector expressed in the local (u, v, w) frame into world space
func (o ONB) Transform(local Vec3) Vec3 {
	return o.U.Multiply(local.X).Add(o.V.Multiply(local.Y)).Add(o.W.Multiply(local.Z))
}
