package core

import (
	"fmt"
	"math"
)

// Matrix is a row-major dynamic matrix of float64 values. It backs two
// unrelated uses in the renderer: a 3x3 rotation basis (see the transform
// package) and the H x W per-channel pixel buffer (see the scene package's
// Viewport). Both only need elementwise arithmetic, multiplication,
// indexed access and, for the 3x3 case, an inverse.
type Matrix struct {
	Rows, Cols int
	data       []float64
}

// NewMatrix allocates a zero-filled rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, data: make([]float64, rows*cols)}
}

// Identity returns an n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func (m *Matrix) index(row, col int) int {
	return row*m.Cols + col
}

// At returns the value at (row, col).
func (m *Matrix) At(row, col int) float64 {
	return m.data[m.index(row, col)]
}

// Set writes the value at (row, col).
func (m *Matrix) Set(row, col int, v float64) {
	m.data[m.index(row, col)] = v
}

// Flat returns the flattened index for (row, col); the inverse operations,
// Row and Col, project a flat index back onto its row/column.
func (m *Matrix) Flat(row, col int) int { return m.index(row, col) }

// Row returns the row component of a flattened linear index.
func (m *Matrix) Row(flat int) int { return flat / m.Cols }

// Col returns the column component of a flattened linear index.
func (m *Matrix) Col(flat int) int { return flat % m.Cols }

// AtFlat returns the value at a flattened linear index.
func (m *Matrix) AtFlat(flat int) float64 { return m.data[flat] }

// SetFlat writes the value at a flattened linear index.
func (m *Matrix) SetFlat(flat int, v float64) { m.data[flat] = v }

// Area returns the total number of cells (Rows * Cols).
func (m *Matrix) Area() int { return m.Rows * m.Cols }

// sameShape panics if two matrices do not share dimensions; this is a
// programmer error (invariant violation), not a recoverable condition.
func (m *Matrix) sameShape(other *Matrix) {
	if m.Rows != other.Rows || m.Cols != other.Cols {
		panic(fmt.Sprintf("matrix dimension mismatch: %dx%d vs %dx%d", m.Rows, m.Cols, other.Rows, other.Cols))
	}
}

// Add returns the elementwise sum of two equally-shaped matrices.
func (m *Matrix) Add(other *Matrix) *Matrix {
	m.sameShape(other)
	out := NewMatrix(m.Rows, m.Cols)
	for i := range m.data {
		out.data[i] = m.data[i] + other.data[i]
	}
	return out
}

// Subtract returns the elementwise difference of two equally-shaped matrices.
func (m *Matrix) Subtract(other *Matrix) *Matrix {
	m.sameShape(other)
	out := NewMatrix(m.Rows, m.Cols)
	for i := range m.data {
		out.data[i] = m.data[i] - other.data[i]
	}
	return out
}

// MultiplyScalar returns the matrix scaled by a scalar.
func (m *Matrix) MultiplyScalar(s float64) *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i := range m.data {
		out.data[i] = m.data[i] * s
	}
	return out
}

// Multiply returns the matrix product m x other.
func (m *Matrix) Multiply(other *Matrix) *Matrix {
	if m.Cols != other.Rows {
		panic(fmt.Sprintf("matrix multiply dimension mismatch: %dx%d * %dx%d", m.Rows, m.Cols, other.Rows, other.Cols))
	}
	out := NewMatrix(m.Rows, other.Cols)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < other.Cols; c++ {
			sum := 0.0
			for k := 0; k < m.Cols; k++ {
				sum += m.At(r, k) * other.At(k, c)
			}
			out.Set(r, c, sum)
		}
	}
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	copy(out.data, m.data)
	return out
}

// invPivotEpsilon is added to a zero pivot during Gauss-Jordan elimination.
// This preserves the source renderer's behavior on near-singular rotation
// bases: rather than failing, the inverse degrades gracefully.
const invPivotEpsilon = 1e-6

// Inverse computes the inverse of a square matrix via Gauss-Jordan
// elimination with partial pivoting. Non-square matrices are a programmer
// error and panic; the common case in this renderer is a 3x3 rotation
// basis (see transform.Transform), for which this is numerically well
// conditioned.
func (m *Matrix) Inverse() *Matrix {
	if m.Rows != m.Cols {
		panic(fmt.Sprintf("cannot invert non-square matrix: %dx%d", m.Rows, m.Cols))
	}
	n := m.Rows

	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j] = m.At(i, j)
		}
		aug[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivotRow := col
		maxAbs := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if math.Abs(aug[r][col]) > maxAbs {
				maxAbs = math.Abs(aug[r][col])
				pivotRow = r
			}
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		pivot := aug[col][col]
		if math.Abs(pivot) < invPivotEpsilon {
			pivot += invPivotEpsilon
		}
		for j := 0; j < 2*n; j++ {
			aug[col][j] /= pivot
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			for j := 0; j < 2*n; j++ {
				aug[r][j] -= factor * aug[col][j]
			}
		}
	}

	out := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, aug[i][n+j])
		}
	}
	return out
}

// MultiplyVec3 applies a 3x3 matrix to a column vector. Used by the
// transform package to move vectors between a basis's local and world
// space; panics if m is not 3x3.
func (m *Matrix) MultiplyVec3(v Vec3) Vec3 {
	if m.Rows != 3 || m.Cols != 3 {
		panic(fmt.Sprintf("MultiplyVec3 requires a 3x3 matrix, got %dx%d", m.Rows, m.Cols))
	}
	return Vec3{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// Convolve applies a square kernel matrix to m with zero-padded borders.
// Unused by the core render path; provided because the source matrix
// library exposes it and a texture post-process stage could use it.
func (m *Matrix) Convolve(kernel *Matrix) *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	kr, kc := kernel.Rows/2, kernel.Cols/2
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			sum := 0.0
			for kRow := 0; kRow < kernel.Rows; kRow++ {
				for kCol := 0; kCol < kernel.Cols; kCol++ {
					sr := r + kRow - kr
					sc := c + kCol - kc
					if sr < 0 || sr >= m.Rows || sc < 0 || sc >= m.Cols {
						continue
					}
					sum += m.At(sr, sc) * kernel.At(kRow, kCol)
				}
			}
			out.Set(r, c, sum)
		}
	}
	return out
}
