package diff

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/findiff/array"
)

// Sentinel errors for operator construction and evaluation.
var (
	// ErrOperatorSpec indicates a malformed operator construction: negative
	// axis, non-positive derivative order, wrong constructor arity, or an
	// empty/conflicting derivative specification.
	ErrOperatorSpec = errors.New("diff: invalid operator specification")
	// ErrMisplacedOption indicates an evaluation-time option (such as
	// WithAccuracy) supplied at operator construction. Accuracy belongs to
	// the discretization, not the operator, so it is only accepted by
	// Apply and Matrix.
	ErrMisplacedOption = errors.New("diff: evaluation option not accepted at operator construction")
)

// DefaultAccuracy is the accuracy order used when WithAccuracy is not given.
const DefaultAccuracy = 2

// Option configures an evaluation (Apply or Matrix call).
type Option func(*evalOptions)

type evalOptions struct {
	acc int
}

// WithAccuracy sets the accuracy order of the discretization: the exponent
// of the leading truncation-error term in the grid spacing. Must be a
// positive even integer; validated when the evaluation runs.
func WithAccuracy(n int) Option {
	return func(o *evalOptions) { o.acc = n }
}

func resolveOptions(opts []Option) evalOptions {
	o := evalOptions{acc: DefaultAccuracy}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// kind tags the variant of an operator node.
type kind uint8

const (
	kConst   kind = iota // scalar multiple of the identity
	kPartial             // partial-derivative term, per-axis orders
	kCoef                // position-dependent field coefficient
	kSum                 // sum of children
	kProd                // ordered (non-commutative) product of children
)

// Op is a node of the differential-operator expression tree. Ops are
// immutable once constructed: combinators return fresh nodes and share
// children freely, so any Op may be evaluated concurrently.
type Op struct {
	kind   kind
	value  float64       // kConst
	orders map[int]int   // kPartial: axis → derivative order (all ≥ 1)
	field  *array.Dense  // kCoef
	kids   []*Op         // kSum, kProd
}

// axes returns the partial term's axis indices in ascending order.
func (o *Op) axes() []int {
	out := make([]int, 0, len(o.orders))
	for a := range o.orders {
		out = append(out, a)
	}
	sort.Ints(out)

	return out
}

// partialKey renders a canonical structural key for a partial term, used to
// merge addends with structurally equal derivative specifications.
func (o *Op) partialKey() string {
	var b strings.Builder
	for _, a := range o.axes() {
		fmt.Fprintf(&b, "%d:%d;", a, o.orders[a])
	}

	return b.String()
}

// String renders the operator for debugging, in a conventional d/dx notation.
func (o *Op) String() string {
	switch o.kind {
	case kConst:
		return fmt.Sprintf("%g", o.value)
	case kPartial:
		var b strings.Builder
		for i, a := range o.axes() {
			if i > 0 {
				b.WriteString("·")
			}
			if d := o.orders[a]; d == 1 {
				fmt.Fprintf(&b, "d/dx%d", a)
			} else {
				fmt.Fprintf(&b, "d%d/dx%d%d", d, a, d)
			}
		}

		return b.String()
	case kCoef:
		return fmt.Sprintf("coef%v", o.field.Shape())
	case kSum:
		parts := make([]string, len(o.kids))
		for i, k := range o.kids {
			parts[i] = k.String()
		}

		return "(" + strings.Join(parts, " + ") + ")"
	case kProd:
		parts := make([]string, len(o.kids))
		for i, k := range o.kids {
			parts[i] = k.String()
		}

		return strings.Join(parts, " * ")
	}

	return "?"
}
