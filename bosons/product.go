package bosons

import (
	"fmt"
	"slices"

	"github.com/qusym/qusym/terms"
)

// BosonProduct is a normal-ordered product of bosonic creation operators
// followed by annihilation operators, each index list sorted ascending.
// Repeated indices denote repeated application of the same ladder
// operator. The zero value is the identity. Products are immutable
// values.
type BosonProduct struct {
	creators     []int
	annihilators []int
}

// NewBosonProduct builds a product from creator and annihilator mode
// indices, sorting each list ascending. A repeated index within one list
// fails with terms.ErrDuplicateIndex: the constructor builds products
// one mode at a time, and higher powers of a single mode only arise
// through multiplication or parsing.
func NewBosonProduct(creators, annihilators []int) (BosonProduct, error) {
	cr := slices.Clone(creators)
	slices.Sort(cr)
	if hasAdjacentDuplicate(cr) {
		return BosonProduct{}, fmt.Errorf("creators %v: %w", creators, terms.ErrDuplicateIndex)
	}
	an := slices.Clone(annihilators)
	slices.Sort(an)
	if hasAdjacentDuplicate(an) {
		return BosonProduct{}, fmt.Errorf("annihilators %v: %w", annihilators, terms.ErrDuplicateIndex)
	}

	return BosonProduct{creators: cr, annihilators: an}, nil
}

func hasAdjacentDuplicate(sorted []int) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] == sorted[i] {
			return true
		}
	}

	return false
}

// canonicalBosonProduct sorts raw index lists into canonical order,
// permitting repeated indices. Bosonic reordering carries no sign.
func canonicalBosonProduct(creators, annihilators []int) BosonProduct {
	cr := slices.Clone(creators)
	slices.Sort(cr)
	an := slices.Clone(annihilators)
	slices.Sort(an)

	return BosonProduct{creators: cr, annihilators: an}
}

// Creators returns a copy of the creation indices, ascending.
func (p BosonProduct) Creators() []int { return slices.Clone(p.creators) }

// Annihilators returns a copy of the annihilation indices, ascending.
func (p BosonProduct) Annihilators() []int { return slices.Clone(p.annihilators) }

// NumCreators returns the number of creation operators in the product.
func (p BosonProduct) NumCreators() int { return len(p.creators) }

// NumAnnihilators returns the number of annihilation operators.
func (p BosonProduct) NumAnnihilators() int { return len(p.annihilators) }

// IsIdentity reports whether the product contains no ladder operators.
func (p BosonProduct) IsIdentity() bool {
	return len(p.creators) == 0 && len(p.annihilators) == 0
}

// IsNaturalHermitian reports whether the product equals its own adjoint.
func (p BosonProduct) IsNaturalHermitian() bool {
	return slices.Equal(p.creators, p.annihilators)
}

// Sites returns one past the highest mode index the product touches.
func (p BosonProduct) Sites() int {
	span := 0
	if n := len(p.creators); n > 0 && p.creators[n-1]+1 > span {
		span = p.creators[n-1] + 1
	}
	if n := len(p.annihilators); n > 0 && p.annihilators[n-1]+1 > span {
		span = p.annihilators[n-1] + 1
	}

	return span
}

// Equal reports structural equality of the canonical forms.
func (p BosonProduct) Equal(other BosonProduct) bool {
	return slices.Equal(p.creators, other.creators) &&
		slices.Equal(p.annihilators, other.annihilators)
}

// HermitianConjugate returns the adjoint product. Bosonic conjugation
// swaps the creator and annihilator lists without a sign.
func (p BosonProduct) HermitianConjugate() BosonProduct {
	return BosonProduct{
		creators:     slices.Clone(p.annihilators),
		annihilators: slices.Clone(p.creators),
	}
}

// Mul returns the normal-ordered expansion of p·rhs. The inner
// annihilator/creator block commutes via [a_i, c_j] = δ_ij, producing
// one contraction per matching occurrence.
func (p BosonProduct) Mul(rhs BosonProduct) []BosonProduct {
	commuted := commuteBosonic(p.annihilators, rhs.creators)
	out := make([]BosonProduct, 0, len(commuted))
	for _, t := range commuted {
		cr := append(slices.Clone(p.creators), t.creators...)
		an := append(slices.Clone(t.annihilators), rhs.annihilators...)
		out = append(out, canonicalBosonProduct(cr, an))
	}

	return out
}

type caTerm struct {
	creators     []int
	annihilators []int
}

// commuteBosonic normal-orders the product of sorted annihilators on the
// left with sorted creators on the right. The first creator with a
// matching annihilator contributes one contracted term per matching
// occurrence plus one commuted term carrying the pair through, each
// expanded recursively.
func commuteBosonic(annihilatorsLeft, creatorsRight []int) []caTerm {
	var result []caTerm
	found := false
	for cIndex, creator := range creatorsRight {
		for aIndex, an := range annihilatorsLeft {
			if an != creator {
				continue
			}
			recursed := commuteBosonic(without(annihilatorsLeft, aIndex), without(creatorsRight, cIndex))
			result = append(result, recursed...)
			if !found {
				for _, t := range recursed {
					result = append(result, caTerm{
						creators:     append(slices.Clone(t.creators), creator),
						annihilators: append(slices.Clone(t.annihilators), creator),
					})
				}
			}
			found = true
		}
		if found {
			break
		}
	}
	if !found {
		result = append(result, caTerm{
			creators:     slices.Clone(creatorsRight),
			annihilators: slices.Clone(annihilatorsLeft),
		})
	}

	return result
}

func without(indices []int, at int) []int {
	out := make([]int, 0, len(indices)-1)
	out = append(out, indices[:at]...)

	return append(out, indices[at+1:]...)
}

// String renders the canonical form, e.g. "c0c1a0a2"; the identity
// renders as "I".
func (p BosonProduct) String() string {
	return terms.FormatLadder(p.creators, p.annihilators)
}

// ParseBosonProduct parses the canonical form produced by String.
// Repeated indices are accepted so that multiplication results
// round-trip through text.
func ParseBosonProduct(s string) (BosonProduct, error) {
	cr, an, err := terms.ParseLadder(s)
	if err != nil {
		return BosonProduct{}, err
	}

	return canonicalBosonProduct(cr, an), nil
}
