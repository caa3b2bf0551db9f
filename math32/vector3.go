// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector3 is a 3D vector/point with X, Y and Z components.
// The zero value is the zero vector.
//
// Equality (==) is exact elementwise float comparison with no tolerance,
// so values computed along different paths may compare unequal;
// use [Vector3.IsEqualTol] where rounding matters.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(scalar float32) Vector3 {
	return Vector3{X: scalar, Y: scalar, Z: scalar}
}

// Vector3FromValues returns a new [Vector3] from up to 3 values in X, Y, Z order.
// Missing trailing values are zero; more than 3 values panics.
func Vector3FromValues(vals ...float32) Vector3 {
	checkValues(3, vals)
	var v Vector3
	for i, f := range vals {
		v.SetDim(Dims(i), f)
	}
	return v
}

// Set sets this vector X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3) SetDim(dim Dims, value float32) {
	switch dim {
	case X:
		v.X = value
	case Y:
		v.Y = value
	case Z:
		v.Z = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component.
func (v Vector3) Dim(dim Dims) float32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	default:
		panic("dim is out of range")
	}
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3) FromSlice(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{v.X + s, v.Y + s, v.Z + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3) SetAdd(other Vector3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector3) SetAddScalar(s float32) {
	v.X += s
	v.Y += s
	v.Z += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{v.X - s, v.Y - s, v.Z - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3) SetSub(other Vector3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector3) SetSubScalar(s float32) {
	v.X -= s
	v.Y -= s
	v.Z -= s
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3) SetMulScalar(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// Panics if s is zero.
func (v Vector3) DivScalar(s float32) Vector3 {
	checkDivisor(s)
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// SetDivScalar sets this to division by scalar. Panics if s is zero.
func (v *Vector3) SetDivScalar(s float32) {
	checkDivisor(s)
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the length (magnitude) of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normal returns this vector divided by its length (its unit vector).
// Panics if the vector has zero length.
func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		panic("math32: Normal of zero-length vector")
	}
	return v.DivScalar(l)
}

// SetNormal normalizes this vector so its length will be 1.
// Panics if the vector has zero length.
func (v *Vector3) SetNormal() {
	*v = v.Normal()
}

// IsUnit returns true if the length of this vector is 1 within tol.
func (v Vector3) IsUnit(tol float32) bool {
	return IsEqualTol(v.Length(), 1, tol)
}

// Cross returns the cross product of this vector with other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vec3(v.Y*other.Z-v.Z*other.Y, v.Z*other.X-v.X*other.Z, v.X*other.Y-v.Y*other.X)
}

// IsEqualTol returns if this vector is equal to other within tol on every component.
func (v Vector3) IsEqualTol(other Vector3, tol float32) bool {
	return IsEqualTol(v.X, other.X, tol) && IsEqualTol(v.Y, other.Y, tol) && IsEqualTol(v.Z, other.Z, tol)
}

// Matrix operations:

// MulMatrix3 returns the vector multiplied by the given 3x3 matrix (m * v).
func (v Vector3) MulMatrix3(m *Matrix3) Vector3 {
	return m.MulVector3(v)
}

// MulMatrix4AsPoint returns the vector transformed by the given 4x4 matrix
// as a point (w = 1), with the result divided by its w.
func (v Vector3) MulMatrix4AsPoint(m *Matrix4) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 1)).PerspDiv()
}

// MulMatrix4AsVector returns the vector transformed by the given 4x4 matrix
// as a direction (w = 0), ignoring the translation column.
func (v Vector3) MulMatrix4AsVector(m *Matrix4) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 0)).Vector3()
}
