package path

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Construction
// =============================================================================

func TestNew_Valid(t *testing.T) {
	rows := [][]float64{{0, 0}, {10, 0}, {10, 10}}
	p, err := New(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 2, p.Dim())
	assert.Equal(t, 10.0, p.At(2, 1))

	if diff := cmp.Diff(rows, p.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	p, err := New(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1.0, p.At(0, 0), "path must not alias caller storage")
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"nil", nil},
		{"no rows", [][]float64{}},
		{"no columns", [][]float64{{}, {}}},
		{"ragged", [][]float64{{1, 2}, {3}}},
		{"NaN", [][]float64{{1, math.NaN()}, {3, 4}}},
		{"Inf", [][]float64{{1, 2}, {math.Inf(-1), 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestZeros(t *testing.T) {
	p, err := Zeros(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 3, p.Dim())

	_, err = Zeros(0, 3)
	require.ErrorIs(t, err, ErrInvalidInput)
}

// =============================================================================
// Copy semantics
// =============================================================================

func TestCopy_IsDeep(t *testing.T) {
	p, err := New([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	c, err := Copy(p)
	require.NoError(t, err)
	require.True(t, c.Equal(p))

	c.RawRow(1)[2] = -1
	assert.Equal(t, 6.0, p.At(1, 2), "mutating the copy changed the source")
	assert.False(t, c.Equal(p))
}

func TestCopy_RejectsEmpty(t *testing.T) {
	_, err := Copy(nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Copy(&Path{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRowIsCopy(t *testing.T) {
	p, err := New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	r := p.Row(0)
	r[0] = 42
	assert.Equal(t, 1.0, p.At(0, 0))

	assert.Equal(t, []float64{1, 2}, p.First())
	assert.Equal(t, []float64{3, 4}, p.Last())
}

func TestEqualApprox(t *testing.T) {
	a, err := New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := New([][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})
	require.NoError(t, err)
	c, err := New([][]float64{{1, 2}})
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.True(t, a.EqualApprox(b, 1e-9))
	assert.False(t, a.EqualApprox(c, 1e-9), "shape mismatch must not compare equal")
}

// =============================================================================
// TSV rendering
// =============================================================================

func TestWriteTSV(t *testing.T) {
	p, err := New([][]float64{{0, 0.5}, {10, -2}})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, p.WriteTSV(&sb))
	assert.Equal(t, "0\t0.5\t\n10\t-2\t\n", sb.String())
	assert.Equal(t, sb.String(), p.String())
}

func TestWriteRowsTSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteRowsTSV(&sb, [][]float64{{1}, {2, 3}}))
	assert.Equal(t, "1\t\n2\t3\t\n", sb.String())
}
