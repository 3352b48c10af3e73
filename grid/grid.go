package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid indicates a spacing description that is missing a required
// axis, non-positive, non-monotonic, or otherwise internally inconsistent.
var ErrInvalidGrid = errors.New("grid: invalid spacing description")

// Axis describes the spacing along a single grid axis: either a uniform
// positive step, or an explicit strictly increasing coordinate sequence.
// The zero Axis is invalid.
type Axis struct {
	step   float64
	coords []float64
}

// Uniform returns an Axis with constant step h between neighboring points.
// Validity (h > 0) is checked when the Axis is bound into a Grid.
func Uniform(h float64) Axis {
	return Axis{step: h}
}

// Coords returns an Axis with explicit point coordinates xs, for non-uniform
// grids. The slice is copied; validity (len ≥ 2, strictly increasing) is
// checked when the Axis is bound into a Grid.
func Coords(xs []float64) Axis {
	return Axis{coords: append([]float64(nil), xs...)}
}

// IsUniform reports whether the axis uses a constant step.
func (a Axis) IsUniform() bool { return a.coords == nil }

// Step returns the uniform step. Meaningful only when IsUniform is true.
func (a Axis) Step() float64 { return a.step }

// Coordinates returns the explicit coordinate slice, or nil for a uniform axis.
// The returned slice must not be mutated.
func (a Axis) Coordinates() []float64 { return a.coords }

// validate checks the axis invariants, naming the axis index in the error.
func (a Axis) validate(axis int) error {
	if a.coords == nil {
		if a.step <= 0 {
			return fmt.Errorf("axis %d: step %g must be positive: %w", axis, a.step, ErrInvalidGrid)
		}

		return nil
	}
	if len(a.coords) < 2 {
		return fmt.Errorf("axis %d: need at least 2 coordinates, got %d: %w", axis, len(a.coords), ErrInvalidGrid)
	}
	for i := 1; i < len(a.coords); i++ {
		if a.coords[i] <= a.coords[i-1] {
			return fmt.Errorf("axis %d: coordinates must be strictly increasing at index %d: %w", axis, i, ErrInvalidGrid)
		}
	}

	return nil
}

// Grid binds spacing descriptions to axis indices. Immutable once built.
type Grid struct {
	axes map[int]Axis
	all  *Axis // non-nil when one uniform step applies to every axis
}

// New constructs a Grid from an axis-index → Axis mapping.
// Every entry is validated eagerly: non-negative axis indices, positive
// uniform steps, strictly increasing coordinate slices.
// Returns ErrInvalidGrid on any violation.
// Complexity: O(total coordinate count).
func New(axes map[int]Axis) (*Grid, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("no axes bound: %w", ErrInvalidGrid)
	}
	g := &Grid{axes: make(map[int]Axis, len(axes))}
	for axis, a := range axes {
		if axis < 0 {
			return nil, fmt.Errorf("axis index %d must be non-negative: %w", axis, ErrInvalidGrid)
		}
		if err := a.validate(axis); err != nil {
			return nil, err
		}
		g.axes[axis] = a
	}

	return g, nil
}

// UniformAll returns a Grid whose single uniform step h applies to every axis.
// This is the only form in which one spacing value may stand in for all axes.
// Returns ErrInvalidGrid when h is not positive.
func UniformAll(h float64) (*Grid, error) {
	if h <= 0 {
		return nil, fmt.Errorf("step %g must be positive: %w", h, ErrInvalidGrid)
	}
	a := Uniform(h)

	return &Grid{all: &a}, nil
}

// Axis returns the spacing bound to the given axis index, or an error naming
// the missing axis. For UniformAll grids every axis resolves to the shared step.
func (g *Grid) Axis(axis int) (Axis, error) {
	if g.all != nil {
		return *g.all, nil
	}
	a, ok := g.axes[axis]
	if !ok {
		return Axis{}, fmt.Errorf("no spacing defined along axis %d: %w", axis, ErrInvalidGrid)
	}

	return a, nil
}
