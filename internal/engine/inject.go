// Package engine implements the path densification and smoothing stages.
package engine

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-path-planner/internal/path"
	"github.com/tphakala/go-path-planner/internal/simdops"
)

// InjectedLen returns the length of a path of n points after injecting
// count points between every adjacent pair: n + count*(n-1).
func InjectedLen(n, count int) int {
	if n < 1 {
		return 0
	}
	return n + count*(n-1)
}

// Inject upsamples p by linear injection. Between every pair of adjacent
// points p[i], p[i+1] it inserts count evenly spaced points
//
//	q_j = p[i] + j/(count+1) * (p[i+1] - p[i]),  j = 1..count
//
// Every dimension is interpolated the same way, including non-spatial
// fields such as heading. Original points are kept and the last point is
// emitted exactly once. count == 0 returns a copy of p.
//
// BigO: Order N * count
func Inject(p *path.Path, count int) (*path.Path, error) {
	if p.Len() < minInjectPoints {
		return nil, fmt.Errorf("%w: injection needs at least %d points, got %d",
			path.ErrInvalidInput, minInjectPoints, p.Len())
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: injection count must be >= 0, got %d", path.ErrInvalidInput, count)
	}
	if count == 0 {
		return path.Copy(p)
	}

	n := p.Len()
	if count > (MaxPathPoints-n)/(n-1) {
		return nil, fmt.Errorf("%w: injecting %d points into %d-point path exceeds %d points",
			ErrPathTooLarge, count, n, MaxPathPoints)
	}

	out, err := path.Zeros(InjectedLen(n, count), p.Dim())
	if err != nil {
		return nil, err
	}

	ops := simdops.Default()
	step := make([]float64, p.Dim())
	divisor := make([]float64, p.Dim())
	for d := range divisor {
		divisor[d] = float64(count + 1)
	}

	index := 0
	for i := 0; i < n-1; i++ {
		from, to := p.RawRow(i), p.RawRow(i+1)

		copy(out.RawRow(index), from)
		index++

		// step = (to - from) / (count+1), divided rather than scaled by the
		// reciprocal so injected points match existing trajectories exactly.
		floats.SubTo(step, to, from)
		ops.Div(step, step, divisor)

		for j := 1; j <= count; j++ {
			dst := out.RawRow(index)
			for d := range dst {
				// Explicit conversion keeps j*step and + from separately rounded.
				dst[d] = float64(float64(j)*step[d]) + from[d]
			}
			index++
		}
	}

	copy(out.RawRow(index), p.RawRow(n-1))

	return out, nil
}
