// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Transforms follow the OpenGL conventions: right-handed world space,
// with the camera looking down -Z and +Y up. Angles are in radians.
// Composition is by premultiplication, so the transform applied last
// is the leftmost factor.

const (
	// UnitTol is the tolerance used to check that a vector has unit length.
	UnitTol = 1e-4

	// OrthoTol is the tolerance used to check that a basis is orthonormal.
	OrthoTol = 1e-3
)

// Translation returns the 4x4 matrix translating by v:
// the identity with the translation column set to v.
func Translation(v Vector3) Matrix4 {
	m := Identity4()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Translate returns this transform followed by a translation by v.
func (m Matrix4) Translate(v Vector3) Matrix4 {
	return Translation(v).Mul(m)
}

// Rotation returns the 4x4 matrix rotating by angle radians around the
// given axis through the origin (Rodrigues' formula). The axis must be a
// unit vector: callers normalize it first. A non-unit axis panics.
func Rotation(angle float32, axis Vector3) Matrix4 {
	if !axis.IsUnit(UnitTol) {
		panic("math32: Rotation axis " + axis.String() + " is not a unit vector")
	}
	s, c := Sincos(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	return Matrix4FromRows(
		Vec4(x*x*t+c, x*y*t-z*s, x*z*t+y*s, 0),
		Vec4(y*x*t+z*s, y*y*t+c, y*z*t-x*s, 0),
		Vec4(z*x*t-y*s, z*y*t+x*s, z*z*t+c, 0),
		Vec4(0, 0, 0, 1),
	)
}

// Rotate returns this transform followed by a rotation of angle radians
// around the unit axis.
func (m Matrix4) Rotate(angle float32, axis Vector3) Matrix4 {
	return Rotation(angle, axis).Mul(m)
}

// Scaling returns the 4x4 matrix scaling by the components of v:
// the identity with the diagonal replaced by v.
func Scaling(v Vector3) Matrix4 {
	m := Identity4()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// Scale returns this transform followed by a scaling by v.
func (m Matrix4) Scale(v Vector3) Matrix4 {
	return Scaling(v).Mul(m)
}

// Perspective returns the OpenGL perspective projection for a camera at the
// origin looking down -Z, mapping the view frustum between the near and far
// planes at distances znear and zfar into the canonical clip volume.
// The field of view fov is in radians, with f = 1/tan(fov) as the vertical
// focal scale, and aspect is width / height.
// Panics unless 0 < znear < zfar, 0 < fov < π/2 and aspect > 0.
func Perspective(znear, zfar, fov, aspect float32) Matrix4 {
	if !(0 < znear && znear < zfar) {
		panic("math32: Perspective requires 0 < znear < zfar")
	}
	if !(0 < fov && fov < HalfPi) {
		panic("math32: Perspective requires 0 < fov < π/2 radians")
	}
	if !(aspect > 0) {
		panic("math32: Perspective requires aspect > 0")
	}
	var m Matrix4
	f := 1 / Tan(fov)
	m.SetAt(0, 0, f/aspect)
	m.SetAt(1, 1, f)
	m.SetAt(2, 2, (znear+zfar)/(znear-zfar))
	m.SetAt(2, 3, (2*znear*zfar)/(znear-zfar))
	m.SetAt(3, 2, -1)
	return m
}

// Orthographic returns the axis-aligned box projection of a box of the given
// width and height centered on the -Z axis between the near and far planes
// at distances znear and zfar: the box is first centered on the origin
// and then scaled into the canonical clip volume.
// Panics unless width, height > 0 and 0 < znear < zfar.
func Orthographic(znear, zfar, width, height float32) Matrix4 {
	if !(0 < znear && znear < zfar) {
		panic("math32: Orthographic requires 0 < znear < zfar")
	}
	if !(width > 0 && height > 0) {
		panic("math32: Orthographic requires width > 0 and height > 0")
	}
	center := Translation(Vec3(0, 0, (znear+zfar)/2))
	return Scaling(Vec3(2/width, 2/height, -2/(zfar-znear))).Mul(center)
}

// LookAt returns the rotation that maps world coordinates into camera
// coordinates (a change of basis) for a camera with the given front, right
// and up directions: rows 0, 1, 2 are right, up and -front.
// The three vectors must be mutually orthonormal; otherwise it panics,
// as the result would not be a rotation.
func LookAt(front, right, up Vector3) Matrix4 {
	if !IsOrthonormal(front, right, up, OrthoTol) {
		panic("math32: LookAt basis is not orthonormal")
	}
	back := front.Negate()
	return Matrix4FromRows(
		Vector4FromVector3(right, 0),
		Vector4FromVector3(up, 0),
		Vector4FromVector3(back, 0),
		Vec4(0, 0, 0, 1),
	)
}

// LookAtFrontRight returns [LookAt] with up derived as right × front.
// front and right must be orthonormal.
func LookAtFrontRight(front, right Vector3) Matrix4 {
	return LookAt(front, right, right.Cross(front))
}

// ViewMatrix returns the full view matrix of a camera at pos with the given
// orthonormal basis: rotate into the camera basis after translating the
// camera to the origin. The order matters: LookAt * Translation(-pos).
func ViewMatrix(pos, front, right, up Vector3) Matrix4 {
	return LookAt(front, right, up).Mul(Translation(pos.Negate()))
}

// IsOrthonormal returns true if the three vectors all have unit length
// and are mutually perpendicular, within tol.
func IsOrthonormal(a, b, c Vector3, tol float32) bool {
	if !a.IsUnit(tol) || !b.IsUnit(tol) || !c.IsUnit(tol) {
		return false
	}
	return Abs(a.Dot(b)) <= tol && Abs(a.Dot(c)) <= tol && Abs(b.Dot(c)) <= tol
}
