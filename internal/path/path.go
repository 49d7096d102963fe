// Package path implements the matrix-backed path buffer shared by all
// planning stages. A Path is an ordered sequence of points of identical
// dimensionality, stored row-major in a gonum dense matrix.
package path

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidInput indicates a malformed path or argument.
var ErrInvalidInput = errors.New("invalid input")

// Path is an ordered sequence of n-dimensional points.
// Rows are points, columns are dimensions.
type Path struct {
	m *mat.Dense
}

// New creates a path from a rectangular matrix of reals.
// The input is copied; later changes to rows do not affect the path.
//
// Requirements: at least one row, at least one column, a uniform
// column count and only finite values.
func New(rows [][]float64) (*Path, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: path has no points", ErrInvalidInput)
	}

	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: points have no dimensions", ErrInvalidInput)
	}

	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: point %d has %d dimensions, want %d", ErrInvalidInput, i, len(row), cols)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: point %d dimension %d is not finite", ErrInvalidInput, i, j)
			}
		}
		data = append(data, row...)
	}

	return &Path{m: mat.NewDense(len(rows), cols, data)}, nil
}

// Zeros allocates a path of the given shape with every value set to 0.
func Zeros(rows, cols int) (*Path, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: path shape %dx%d", ErrInvalidInput, rows, cols)
	}
	return &Path{m: mat.NewDense(rows, cols, nil)}, nil
}

// Copy returns a deep copy of p. Mutating the copy never affects p.
//
// BigO: rows × cols.
func Copy(p *Path) (*Path, error) {
	if p == nil || p.m == nil || p.Len() == 0 {
		return nil, fmt.Errorf("%w: cannot copy an empty path", ErrInvalidInput)
	}
	return &Path{m: mat.DenseCopyOf(p.m)}, nil
}

// Clone is like Copy for a path already known to be valid.
func (p *Path) Clone() *Path {
	return &Path{m: mat.DenseCopyOf(p.m)}
}

// Len returns the number of points.
func (p *Path) Len() int {
	if p == nil || p.m == nil {
		return 0
	}
	r, _ := p.m.Dims()
	return r
}

// Dim returns the dimensionality of every point.
func (p *Path) Dim() int {
	if p == nil || p.m == nil {
		return 0
	}
	_, c := p.m.Dims()
	return c
}

// At returns dimension j of point i.
func (p *Path) At(i, j int) float64 {
	return p.m.At(i, j)
}

// Row returns a copy of point i.
func (p *Path) Row(i int) []float64 {
	return mat.Row(nil, i, p.m)
}

// RawRow returns point i as a view into the backing storage.
// Writes through the returned slice modify the path.
func (p *Path) RawRow(i int) []float64 {
	return p.m.RawRowView(i)
}

// First returns a copy of the first point.
func (p *Path) First() []float64 {
	return p.Row(0)
}

// Last returns a copy of the last point.
func (p *Path) Last() []float64 {
	return p.Row(p.Len() - 1)
}

// Rows returns the path as a freshly allocated matrix of reals.
func (p *Path) Rows() [][]float64 {
	n := p.Len()
	out := make([][]float64, n)
	for i := range n {
		out[i] = p.Row(i)
	}
	return out
}

// Equal reports whether p and q have the same shape and identical values.
func (p *Path) Equal(q *Path) bool {
	if p.Len() != q.Len() || p.Dim() != q.Dim() {
		return false
	}
	return mat.Equal(p.m, q.m)
}

// EqualApprox reports whether p and q have the same shape and all values
// agree within tol (absolute or relative, see scalar.EqualWithinAbsOrRel).
func (p *Path) EqualApprox(q *Path, tol float64) bool {
	if p.Len() != q.Len() || p.Dim() != q.Dim() {
		return false
	}
	for i := range p.Len() {
		a, b := p.RawRow(i), q.RawRow(i)
		for j := range a {
			if !scalar.EqualWithinAbsOrRel(a[j], b[j], tol, tol) {
				return false
			}
		}
	}
	return true
}
