// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 matrix of float32 stored in column-major order:
// element [row][col] is at index col*4 + row. This is the memory layout
// expected by shader uniform uploads, so the array can be handed over as is
// (see [Matrix4.Slice]).
//
// The zero value is the zero matrix.
type Matrix4 [16]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4Scalar(1)
}

// Matrix4Scalar returns s times the identity matrix.
func Matrix4Scalar(s float32) Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		m[i*4+i] = s
	}
	return m
}

// Matrix4FromValues returns a matrix filled from up to 16 values
// in column-major order. Elements past the end of vals are zero;
// more than 16 values panics.
func Matrix4FromValues(vals ...float32) Matrix4 {
	checkValues(16, vals)
	var m Matrix4
	copy(m[:], vals)
	return m
}

// Matrix4FromRows returns a matrix from 4 rows given in the usual
// reading order, which is easier to write in literals than column-major.
func Matrix4FromRows(r0, r1, r2, r3 Vector4) Matrix4 {
	var m Matrix4
	for i, r := range [4]Vector4{r0, r1, r2, r3} {
		m.SetRow(i, r)
	}
	return m
}

// At returns the element at the given row and column.
func (m *Matrix4) At(row, col int) float32 {
	checkIndex(row, 4)
	checkIndex(col, 4)
	return m[col*4+row]
}

// SetAt sets the element at the given row and column.
func (m *Matrix4) SetAt(row, col int, v float32) {
	checkIndex(row, 4)
	checkIndex(col, 4)
	m[col*4+row] = v
}

// Matrix4Row is a row accessor for a [Matrix4], which translates
// row-major [row][col] indexing into the column-major storage.
// It refers to the matrix it was obtained from, and is only valid
// as long as that matrix is.
type Matrix4Row struct {
	m   *Matrix4
	row int
}

// Row returns an accessor for the given row, so that elements
// can be read and written as m.Row(i).At(j) and m.Row(i).Set(j, v).
func (m *Matrix4) Row(i int) Matrix4Row {
	checkIndex(i, 4)
	return Matrix4Row{m: m, row: i}
}

// At returns the element in the given column of this row.
func (r Matrix4Row) At(col int) float32 {
	return r.m.At(r.row, col)
}

// Set sets the element in the given column of this row.
func (r Matrix4Row) Set(col int, v float32) {
	r.m.SetAt(r.row, col, v)
}

// Vector4 returns the row as a vector.
func (r Matrix4Row) Vector4() Vector4 {
	return Vec4(r.At(0), r.At(1), r.At(2), r.At(3))
}

// SetRow sets the given row from a vector.
func (m *Matrix4) SetRow(i int, v Vector4) {
	r := m.Row(i)
	for j := 0; j < 4; j++ {
		r.Set(j, v.Dim(Dims(j)))
	}
}

// Col returns the given column as a vector.
func (m *Matrix4) Col(j int) Vector4 {
	checkIndex(j, 4)
	return Vec4(m[j*4], m[j*4+1], m[j*4+2], m[j*4+3])
}

// SetCol sets the given column from a vector.
func (m *Matrix4) SetCol(j int, v Vector4) {
	checkIndex(j, 4)
	m[j*4] = v.X
	m[j*4+1] = v.Y
	m[j*4+2] = v.Z
	m[j*4+3] = v.W
}

// Slice returns the column-major backing storage of the matrix as a slice
// of 16 floats, aliasing the matrix. This is the layout consumed by
// shader uniform uploads of a mat4.
func (m *Matrix4) Slice() []float32 {
	return m[:]
}

// ToSlice copies this matrix to array starting at offset, in column-major order.
func (m Matrix4) ToSlice(array []float32, offset int) {
	copy(array[offset:], m[:])
}

// FromSlice sets this matrix from array starting at offset, in column-major order.
func (m *Matrix4) FromSlice(array []float32, offset int) {
	copy(m[:], array[offset:offset+16])
}

// Add returns the elementwise sum of this matrix and other.
func (m Matrix4) Add(other Matrix4) Matrix4 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// AddScalar returns this matrix with s added to every element.
func (m Matrix4) AddScalar(s float32) Matrix4 {
	for i := range m {
		m[i] += s
	}
	return m
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns the matrix product m * other:
// result[i][j] = Σ_k m[i][k] * other[k][j].
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+i] * other[j*4+k]
			}
			r[j*4+i] = sum
		}
	}
	return r
}

// SetMul sets this matrix to m * other.
func (m *Matrix4) SetMul(other Matrix4) {
	*m = m.Mul(other)
}

// MulMatrices sets this matrix to the product a * b.
func (m *Matrix4) MulMatrices(a, b Matrix4) {
	*m = a.Mul(b)
}

// MulVector4 returns the linear map of v by this matrix (m * v).
func (m *Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W}
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i*4+j] = m[j*4+i]
		}
	}
	return r
}

// IsEqualTol returns if every element of this matrix is within tol of other.
func (m *Matrix4) IsEqualTol(other Matrix4, tol float32) bool {
	for i := range m {
		if !IsEqualTol(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// String returns the matrix in row-major reading order, one row per line.
func (m Matrix4) String() string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", m[j*4+i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
