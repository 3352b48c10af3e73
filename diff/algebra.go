package diff

import (
	"fmt"

	"github.com/katalvlaran/findiff/array"
)

// Diff constructs the partial-derivative operator ∂^order/∂x_axis^order.
// The order argument is optional and defaults to 1; more than one order
// value is a specification error (use DiffN for mixed partials).
//
// Errors: ErrOperatorSpec on negative axis, order < 1, or extra arguments.
func Diff(axis int, order ...int) (*Op, error) {
	if axis < 0 {
		return nil, fmt.Errorf("axis %d must be non-negative: %w", axis, ErrOperatorSpec)
	}
	d := 1
	switch len(order) {
	case 0:
	case 1:
		d = order[0]
	default:
		return nil, fmt.Errorf("Diff takes at most one order argument, got %d: %w", len(order), ErrOperatorSpec)
	}
	if d < 1 {
		return nil, fmt.Errorf("derivative order %d must be >= 1: %w", d, ErrOperatorSpec)
	}

	return &Op{kind: kPartial, orders: map[int]int{axis: d}}, nil
}

// DiffN constructs a mixed partial-derivative operator from an axis → order
// mapping, e.g. {0: 1, 1: 2} for ∂³/∂x0∂x1². Orders along each axis are
// independent. The mapping is copied; the caller's map is not retained.
//
// DiffN accepts no evaluation options: accuracy is meaningful only against a
// concrete grid, so passing one here fails with ErrMisplacedOption rather
// than being silently ignored.
//
// Errors: ErrOperatorSpec on an empty mapping, negative axis or order < 1;
// ErrMisplacedOption when any Option is supplied.
func DiffN(orders map[int]int, opts ...Option) (*Op, error) {
	if len(opts) > 0 {
		return nil, ErrMisplacedOption
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("empty derivative specification: %w", ErrOperatorSpec)
	}
	cp := make(map[int]int, len(orders))
	for axis, d := range orders {
		if axis < 0 {
			return nil, fmt.Errorf("axis %d must be non-negative: %w", axis, ErrOperatorSpec)
		}
		if d < 1 {
			return nil, fmt.Errorf("derivative order %d on axis %d must be >= 1: %w", d, axis, ErrOperatorSpec)
		}
		cp[axis] = d
	}

	return &Op{kind: kPartial, orders: cp}, nil
}

// Coef wraps a position-dependent field g as a coefficient operator.
// Left of a derivative (Coef(g).Mul(D)) it scales the derivative
// elementwise after differentiation; right of a derivative (D.Mul(Coef(g)))
// the operand is premultiplied by g before differentiation, which realizes
// the product rule g·f′ + g′·f through the stencil itself.
//
// Errors: ErrOperatorSpec on a nil field.
func Coef(g *array.Dense) (*Op, error) {
	if g == nil {
		return nil, fmt.Errorf("nil coefficient field: %w", ErrOperatorSpec)
	}

	return &Op{kind: kCoef, field: g}, nil
}

// Const returns the scalar operator c·I (c times the identity).
func Const(c float64) *Op {
	return &Op{kind: kConst, value: c}
}

// Identity returns the identity operator: applying it returns the operand.
func Identity() *Op { return Const(1) }

// Laplacian returns Σ_i ∂²/∂x_i² over the first ndims axes.
//
// Errors: ErrOperatorSpec when ndims < 1.
func Laplacian(ndims int) (*Op, error) {
	if ndims < 1 {
		return nil, fmt.Errorf("Laplacian needs at least one dimension, got %d: %w", ndims, ErrOperatorSpec)
	}
	out, err := Diff(0, 2)
	if err != nil {
		return nil, err
	}
	for axis := 1; axis < ndims; axis++ {
		d2, err := Diff(axis, 2)
		if err != nil {
			return nil, err
		}
		out = out.Add(d2)
	}

	return out, nil
}

// Add returns the operator sum a + b. Nested sums are flattened, constant
// addends folded into one, and addends whose partial-derivative term is
// structurally equal are merged by summing their scalar coefficients.
// Merging is scalar-only: addends carrying field coefficients stay separate
// terms and are summed at evaluation.
func (a *Op) Add(b *Op) *Op {
	addends := make([]*Op, 0, 4)
	for _, n := range []*Op{a, b} {
		if n.kind == kSum {
			addends = append(addends, n.kids...)
		} else {
			addends = append(addends, n)
		}
	}

	type entry struct {
		coef float64
		core *Op
	}
	var (
		constAcc float64
		order    []string          // insertion order of mergeable keys
		merged   = map[string]*entry{}
		others   []*Op             // non-mergeable addends, original order
	)
	for _, n := range addends {
		if n.kind == kConst {
			constAcc += n.value
			continue
		}
		c, core := splitScalar(n)
		if core.kind != kPartial {
			others = append(others, n)
			continue
		}
		key := core.partialKey()
		if e, ok := merged[key]; ok {
			e.coef += c
		} else {
			merged[key] = &entry{coef: c, core: core}
			order = append(order, key)
		}
	}

	out := make([]*Op, 0, len(order)+len(others)+1)
	for _, key := range order {
		e := merged[key]
		switch e.coef {
		case 0:
			// cancelled term
		case 1:
			out = append(out, e.core)
		default:
			out = append(out, &Op{kind: kProd, kids: []*Op{Const(e.coef), e.core}})
		}
	}
	out = append(out, others...)
	if constAcc != 0 {
		out = append(out, Const(constAcc))
	}

	switch len(out) {
	case 0:
		return Const(0)
	case 1:
		return out[0]
	}

	return &Op{kind: kSum, kids: out}
}

// Sub returns the operator difference a - b, as a + (-1)·b.
func (a *Op) Sub(b *Op) *Op {
	return a.Add(b.Scale(-1))
}

// Scale returns c·a.
func (a *Op) Scale(c float64) *Op {
	return Const(c).Mul(a)
}

// Mul returns the operator product a·b: b is applied first, then a.
// Nested products are flattened, scalar constants commute out to a single
// leading factor, and consecutive partial-derivative factors chain: their
// derivative orders add along shared axes. Field coefficients do not
// commute and keep their position, preserving the product-rule semantics.
func (a *Op) Mul(b *Op) *Op {
	factors := make([]*Op, 0, 4)
	for _, n := range []*Op{a, b} {
		if n.kind == kProd {
			factors = append(factors, n.kids...)
		} else {
			factors = append(factors, n)
		}
	}

	scalar := 1.0
	rest := make([]*Op, 0, len(factors))
	for _, n := range factors {
		if n.kind == kConst {
			scalar *= n.value
			continue
		}
		// Chain consecutive partials: orders add along shared axes.
		if n.kind == kPartial && len(rest) > 0 && rest[len(rest)-1].kind == kPartial {
			prev := rest[len(rest)-1]
			sum := make(map[int]int, len(prev.orders)+len(n.orders))
			for axis, d := range prev.orders {
				sum[axis] = d
			}
			for axis, d := range n.orders {
				sum[axis] += d
			}
			rest[len(rest)-1] = &Op{kind: kPartial, orders: sum}
			continue
		}
		rest = append(rest, n)
	}

	if scalar == 0 {
		return Const(0)
	}
	if len(rest) == 0 {
		return Const(scalar)
	}
	if scalar != 1 {
		rest = append([]*Op{Const(scalar)}, rest...)
	}
	if len(rest) == 1 {
		return rest[0]
	}

	return &Op{kind: kProd, kids: rest}
}

// splitScalar normalizes a node into (scalar coefficient, core): a product
// with a leading constant splits, everything else has coefficient 1.
func splitScalar(n *Op) (float64, *Op) {
	if n.kind != kProd || len(n.kids) == 0 || n.kids[0].kind != kConst {
		return 1, n
	}
	c := n.kids[0].value
	rest := n.kids[1:]
	if len(rest) == 1 {
		return c, rest[0]
	}

	return c, &Op{kind: kProd, kids: rest}
}

// partialTerms collects every partial-derivative term in the tree, for
// pre-evaluation grid and extent validation.
func (o *Op) partialTerms() []map[int]int {
	var out []map[int]int
	var walk func(n *Op)
	walk = func(n *Op) {
		switch n.kind {
		case kPartial:
			out = append(out, n.orders)
		case kSum, kProd:
			for _, k := range n.kids {
				walk(k)
			}
		}
	}
	walk(o)

	return out
}
