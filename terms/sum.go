package terms

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Unbounded marks a Sum with no declared index range.
const Unbounded = 0

// Sum is a sparse linear combination of canonical product keys with exact
// complex coefficients. The zero value is not ready for use; construct via
// NewSum. Sums are value-like aggregates with no implicit sharing: mutate
// them from one goroutine at a time, or Clone.
type Sum[K Key] struct {
	// bound is one past the largest admissible site/mode index, or
	// Unbounded when the sum accepts any index.
	bound   int
	entries map[string]Term[K]
}

// NewSum returns an empty Sum admitting indices below bound, or any index
// when bound is Unbounded.
func NewSum[K Key](bound int) Sum[K] {
	return Sum[K]{bound: bound, entries: make(map[string]Term[K])}
}

// Bound reports the declared index range (Unbounded when none).
func (s *Sum[K]) Bound() int { return s.bound }

// Len reports the number of stored terms.
func (s *Sum[K]) Len() int { return len(s.entries) }

// checkBound rejects keys that reach beyond the declared range.
func (s *Sum[K]) checkBound(k K) error {
	if s.bound != Unbounded && k.Sites() > s.bound {
		return fmt.Errorf("key %q needs %d sites, bound is %d: %w", k.String(), k.Sites(), s.bound, ErrIndexOutOfRange)
	}

	return nil
}

// Add accumulates c onto the coefficient stored under k. A net coefficient
// of exactly zero removes the entry, so opposite insertions cancel without
// residue.
func (s *Sum[K]) Add(k K, c complex128) error {
	if err := s.checkBound(k); err != nil {
		return err
	}
	ks := k.String()
	net := s.entries[ks].Coefficient + c
	if net == 0 {
		delete(s.entries, ks)
	} else {
		s.entries[ks] = Term[K]{Key: k, Coefficient: net}
	}

	return nil
}

// Set overwrites the coefficient stored under k. A zero coefficient
// removes the entry.
func (s *Sum[K]) Set(k K, c complex128) error {
	if err := s.checkBound(k); err != nil {
		return err
	}
	if c == 0 {
		delete(s.entries, k.String())
	} else {
		s.entries[k.String()] = Term[K]{Key: k, Coefficient: c}
	}

	return nil
}

// Get returns the coefficient stored under k, or zero when absent.
func (s *Sum[K]) Get(k K) complex128 {
	return s.entries[k.String()].Coefficient
}

// Remove deletes the entry stored under k, if any.
func (s *Sum[K]) Remove(k K) {
	delete(s.entries, k.String())
}

// Terms returns the stored terms sorted by canonical key string. The order
// is deterministic for any fixed content.
func (s *Sum[K]) Terms() []Term[K] {
	out := make([]Term[K], 0, len(s.entries))
	for _, t := range s.entries {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.String() < out[j].Key.String()
	})

	return out
}

// Scale multiplies every coefficient by c in place. Scaling by zero
// empties the sum.
func (s *Sum[K]) Scale(c complex128) {
	if c == 0 {
		clear(s.entries)
		return
	}
	for ks, t := range s.entries {
		t.Coefficient *= c
		s.entries[ks] = t
	}
}

// AddSum accumulates every term of other into s. Declared bounds are
// reconciled by taking the union of ranges: the result is unbounded if
// either operand is, otherwise bounded by the larger range.
func (s *Sum[K]) AddSum(other *Sum[K]) error {
	if s.bound == Unbounded || other.bound == Unbounded {
		s.bound = Unbounded
	} else if other.bound > s.bound {
		s.bound = other.bound
	}
	for _, t := range other.Terms() {
		if err := s.Add(t.Key, t.Coefficient); err != nil {
			return err
		}
	}

	return nil
}

// Sites returns one past the highest index any stored term touches.
func (s *Sum[K]) Sites() int {
	max := 0
	for _, t := range s.entries {
		if n := t.Key.Sites(); n > max {
			max = n
		}
	}

	return max
}

// Equal reports structural equality: same declared bound, same keys, and
// exactly equal coefficients.
func (s *Sum[K]) Equal(other *Sum[K]) bool {
	if s.bound != other.bound || len(s.entries) != len(other.entries) {
		return false
	}
	for ks, t := range s.entries {
		if ot, ok := other.entries[ks]; !ok || ot.Coefficient != t.Coefficient {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s. Keys are immutable values and
// are shared.
func (s *Sum[K]) Clone() Sum[K] {
	out := NewSum[K](s.bound)
	for ks, t := range s.entries {
		out.entries[ks] = t
	}

	return out
}

// String renders the sum as coefficient*key terms joined by " + " in
// deterministic key order; the empty sum renders as "0". Coefficients use
// the parenthesized strconv complex form, e.g. "(2+3i)*0X1Z".
func (s *Sum[K]) String() string {
	if len(s.entries) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(s.entries))
	for _, t := range s.Terms() {
		parts = append(parts, strconv.FormatComplex(t.Coefficient, 'G', -1, 128)+"*"+t.Key.String())
	}

	return strings.Join(parts, " + ")
}

// ReconcileBounds widens two sums of possibly different key families to
// the union of their declared ranges. Used by open-system grouping, where
// the system and noise parts must agree on the admissible index range.
func ReconcileBounds[A Key, B Key](a *Sum[A], b *Sum[B]) {
	bound := Unbounded
	if a.bound != Unbounded && b.bound != Unbounded {
		bound = a.bound
		if b.bound > bound {
			bound = b.bound
		}
	}
	a.bound = bound
	b.bound = bound
}

// ParseSum parses the String form back into a Sum over keys produced by
// parseKey, admitting indices below bound.
func ParseSum[K Key](s string, bound int, parseKey func(string) (K, error)) (Sum[K], error) {
	out := NewSum[K](bound)
	if s == "0" || s == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, " + ") {
		coeffStr, keyStr, ok := strings.Cut(part, "*")
		if !ok {
			return out, fmt.Errorf("term %q: missing coefficient separator: %w", part, ErrParse)
		}
		c, err := strconv.ParseComplex(coeffStr, 128)
		if err != nil {
			return out, fmt.Errorf("term %q: bad coefficient: %w", part, ErrParse)
		}
		k, err := parseKey(keyStr)
		if err != nil {
			return out, err
		}
		if err := out.Add(k, c); err != nil {
			return out, err
		}
	}

	return out, nil
}
