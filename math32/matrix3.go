// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix3 is a 3x3 matrix of float32 stored in column-major order:
// element [row][col] is at index col*3 + row.
// The zero value is the zero matrix.
type Matrix3 [9]float32

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3Scalar(1)
}

// Matrix3Scalar returns s times the identity matrix.
func Matrix3Scalar(s float32) Matrix3 {
	var m Matrix3
	for i := 0; i < 3; i++ {
		m[i*3+i] = s
	}
	return m
}

// Matrix3FromValues returns a matrix filled from up to 9 values
// in column-major order. Elements past the end of vals are zero;
// more than 9 values panics.
func Matrix3FromValues(vals ...float32) Matrix3 {
	checkValues(9, vals)
	var m Matrix3
	copy(m[:], vals)
	return m
}

// Matrix3FromMatrix4 returns the upper-left 3x3 block of m,
// which is the rotation / scale part of an affine transform.
func Matrix3FromMatrix4(m *Matrix4) Matrix3 {
	var r Matrix3
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			r[j*3+i] = m[j*4+i]
		}
	}
	return r
}

// At returns the element at the given row and column.
func (m *Matrix3) At(row, col int) float32 {
	checkIndex(row, 3)
	checkIndex(col, 3)
	return m[col*3+row]
}

// SetAt sets the element at the given row and column.
func (m *Matrix3) SetAt(row, col int, v float32) {
	checkIndex(row, 3)
	checkIndex(col, 3)
	m[col*3+row] = v
}

// Matrix3Row is a row accessor for a [Matrix3]; see [Matrix4Row].
// It is only valid as long as the matrix it was obtained from is.
type Matrix3Row struct {
	m   *Matrix3
	row int
}

// Row returns an accessor for the given row.
func (m *Matrix3) Row(i int) Matrix3Row {
	checkIndex(i, 3)
	return Matrix3Row{m: m, row: i}
}

// At returns the element in the given column of this row.
func (r Matrix3Row) At(col int) float32 {
	return r.m.At(r.row, col)
}

// Set sets the element in the given column of this row.
func (r Matrix3Row) Set(col int, v float32) {
	r.m.SetAt(r.row, col, v)
}

// Col returns the given column as a vector.
func (m *Matrix3) Col(j int) Vector3 {
	checkIndex(j, 3)
	return Vec3(m[j*3], m[j*3+1], m[j*3+2])
}

// Slice returns the column-major backing storage as a slice of 9 floats.
func (m *Matrix3) Slice() []float32 {
	return m[:]
}

// Add returns the elementwise sum of this matrix and other.
func (m Matrix3) Add(other Matrix3) Matrix3 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// AddScalar returns this matrix with s added to every element.
func (m Matrix3) AddScalar(s float32) Matrix3 {
	for i := range m {
		m[i] += s
	}
	return m
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns the matrix product m * other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[k*3+i] * other[j*3+k]
			}
			r[j*3+i] = sum
		}
	}
	return r
}

// MulVector3 returns the linear map of v by this matrix (m * v).
func (m *Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z}
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[j*3+i]
		}
	}
	return r
}

// IsEqualTol returns if every element of this matrix is within tol of other.
func (m *Matrix3) IsEqualTol(other Matrix3, tol float32) bool {
	for i := range m {
		if !IsEqualTol(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// String returns the matrix in row-major reading order, one row per line.
func (m Matrix3) String() string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", m[j*3+i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
