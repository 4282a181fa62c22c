package terms

import (
	"fmt"
	"strings"
)

// Key is the contract every canonical operator product satisfies.
//
// String must return the canonical textual form; two products are equal
// exactly when their canonical forms are equal, so the form doubles as the
// container map key. Sites must return one past the highest site or mode
// index the product touches (0 for the identity), which bounded containers
// compare against their declared range.
type Key interface {
	String() string
	Sites() int
}

// Term pairs a canonical product key with its exact complex coefficient.
type Term[K Key] struct {
	Key         K
	Coefficient complex128
}

// Pair is an ordered pair of products keying one Lindblad dissipator term
// coefficient·L_left·ρ·L_right†. Left and right are independent; no
// Hermiticity constraint relates them.
type Pair[K Key] struct {
	Left  K
	Right K
}

// String renders the pair as "(left, right)". Canonical product forms
// contain no spaces or commas, so the rendering is unambiguous.
func (p Pair[K]) String() string {
	return "(" + p.Left.String() + ", " + p.Right.String() + ")"
}

// Sites returns the larger of the two halves' site counts.
func (p Pair[K]) Sites() int {
	l, r := p.Left.Sites(), p.Right.Sites()
	if l > r {
		return l
	}

	return r
}

// ParsePair parses the "(left, right)" form using the supplied per-half
// product parser.
func ParsePair[K Key](s string, parseKey func(string) (K, error)) (Pair[K], error) {
	var pair Pair[K]
	inner, ok := strings.CutPrefix(s, "(")
	if !ok {
		return pair, fmt.Errorf("pair %q: missing opening parenthesis: %w", s, ErrParse)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return pair, fmt.Errorf("pair %q: missing closing parenthesis: %w", s, ErrParse)
	}
	left, right, ok := strings.Cut(inner, ", ")
	if !ok {
		return pair, fmt.Errorf("pair %q: missing separator: %w", s, ErrParse)
	}
	l, err := parseKey(left)
	if err != nil {
		return pair, err
	}
	r, err := parseKey(right)
	if err != nil {
		return pair, err
	}

	return Pair[K]{Left: l, Right: r}, nil
}
