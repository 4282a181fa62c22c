package fermions

import (
	"fmt"
	"slices"

	"github.com/qusym/qusym/terms"
)

// FermionProduct is a normal-ordered product of fermionic creation
// operators followed by annihilation operators, each index list sorted
// strictly ascending. The zero value is the identity. Products are
// immutable values.
type FermionProduct struct {
	creators     []int
	annihilators []int
}

// FermionTerm is one product of a multiplication expansion together with
// its accumulated anticommutation sign.
type FermionTerm struct {
	Product FermionProduct
	Sign    float64
}

// NewFermionProduct builds the canonical product from two index lists,
// sorting each ascending. A repeated index within one list is rejected
// with terms.ErrDuplicateIndex: such a term is algebraically zero by
// Pauli exclusion. The constructor fixes canonical order only; when a
// reordering sign must be folded into a coefficient, use
// CanonicalFermionPair.
func NewFermionProduct(creators, annihilators []int) (FermionProduct, error) {
	cr, dup, _ := terms.SortSigned(creators)
	if dup {
		return FermionProduct{}, fmt.Errorf("creators %v: %w", creators, terms.ErrDuplicateIndex)
	}
	an, dup, _ := terms.SortSigned(annihilators)
	if dup {
		return FermionProduct{}, fmt.Errorf("annihilators %v: %w", annihilators, terms.ErrDuplicateIndex)
	}

	return FermionProduct{creators: cr, annihilators: an}, nil
}

// CanonicalFermionPair builds the canonical product from two index lists
// and folds the anticommutation sign of the reordering into value: an odd
// number of swaps across the two lists negates it. A repeated index
// within one list fails with terms.ErrDuplicateIndex.
func CanonicalFermionPair(creators, annihilators []int, value complex128) (FermionProduct, complex128, error) {
	cr, dup, parityC := terms.SortSigned(creators)
	if dup {
		return FermionProduct{}, 0, fmt.Errorf("creators %v: %w", creators, terms.ErrDuplicateIndex)
	}
	an, dup, parityA := terms.SortSigned(annihilators)
	if dup {
		return FermionProduct{}, 0, fmt.Errorf("annihilators %v: %w", annihilators, terms.ErrDuplicateIndex)
	}
	if (parityC+parityA)%2 != 0 {
		value = -value
	}

	return FermionProduct{creators: cr, annihilators: an}, value, nil
}

// Creators returns a copy of the creation indices, ascending.
func (p FermionProduct) Creators() []int { return slices.Clone(p.creators) }

// Annihilators returns a copy of the annihilation indices, ascending.
func (p FermionProduct) Annihilators() []int { return slices.Clone(p.annihilators) }

// NumCreators reports the number of creation operators.
func (p FermionProduct) NumCreators() int { return len(p.creators) }

// NumAnnihilators reports the number of annihilation operators.
func (p FermionProduct) NumAnnihilators() int { return len(p.annihilators) }

// IsIdentity reports whether the product contains no ladder operators.
func (p FermionProduct) IsIdentity() bool {
	return len(p.creators) == 0 && len(p.annihilators) == 0
}

// IsNaturalHermitian reports whether the product is its own adjoint,
// i.e. the creator and annihilator index lists coincide.
func (p FermionProduct) IsNaturalHermitian() bool {
	return slices.Equal(p.creators, p.annihilators)
}

// Sites returns one past the highest orbital index the product touches.
func (p FermionProduct) Sites() int {
	n := 0
	if len(p.creators) > 0 {
		n = p.creators[len(p.creators)-1] + 1
	}
	if len(p.annihilators) > 0 && p.annihilators[len(p.annihilators)-1]+1 > n {
		n = p.annihilators[len(p.annihilators)-1] + 1
	}

	return n
}

// Equal reports structural equality of the canonical forms.
func (p FermionProduct) Equal(other FermionProduct) bool {
	return slices.Equal(p.creators, other.creators) &&
		slices.Equal(p.annihilators, other.annihilators)
}

// HermitianConjugate returns the adjoint in canonical form together with
// the anticommutation sign the renormalization picks up: conjugation
// reverses both lists and swaps their roles, and re-sorting them flips
// the sign once per swap.
func (p FermionProduct) HermitianConjugate() (FermionProduct, float64) {
	cr := reversed(p.annihilators)
	an := reversed(p.creators)
	// The reversed lists contain no repeats, so canonicalization cannot
	// fail.
	prod, v, _ := CanonicalFermionPair(cr, an, 1)

	return prod, real(v)
}

func reversed(indices []int) []int {
	out := slices.Clone(indices)
	slices.Reverse(out)

	return out
}

// Mul multiplies two normal-ordered products, resolving every
// anticommutation {a_i, a_j†} = δ_ij contraction. The result is an exact
// expansion into canonical products with ±1 signs; contractions that
// force a repeated index vanish.
func (p FermionProduct) Mul(rhs FermionProduct) []FermionTerm {
	var out []FermionTerm
	for _, t := range commuteFermionic(p.annihilators, rhs.creators) {
		cr := append(slices.Clone(p.creators), t.creators...)
		an := append(slices.Clone(t.annihilators), rhs.annihilators...)
		prod, v, err := CanonicalFermionPair(cr, an, complex(t.sign, 0))
		if err != nil {
			continue // repeated index: the term is zero
		}
		out = append(out, FermionTerm{Product: prod, Sign: real(v)})
	}

	return out
}

// caTerm is one reordered (creators, annihilators) interleaving with its
// anticommutation sign.
type caTerm struct {
	creators     []int
	annihilators []int
	sign         float64
}

// commuteFermionic moves the right factor's creators past the left
// factor's annihilators, recursively splitting on each matching index
// into the contracted term (the δ_ij of the anticommutator) and the
// commuted term (with an extra minus sign). Both inputs are sorted and
// repeat-free; the returned index lists are not yet normal ordered.
func commuteFermionic(annihilatorsLeft, creatorsRight []int) []caTerm {
	var result []caTerm
	// Total parity of swapping all creators past all annihilators when no
	// index is shared.
	origSign := 1.0
	if len(creatorsRight)*len(annihilatorsLeft)%2 != 0 {
		origSign = -1.0
	}
	for cIndex, creator := range creatorsRight {
		aIndex := slices.Index(annihilatorsLeft, creator)
		if aIndex < 0 {
			continue
		}
		// Parity of moving the pair adjacent: past the annihilators before
		// aIndex and the creators after cIndex.
		offsetSign := 1.0
		if (len(annihilatorsLeft)-aIndex+cIndex-1)%2 != 0 {
			offsetSign = -1.0
		}
		recurseCreators := without(creatorsRight, cIndex)
		recurseAnnihilators := without(annihilatorsLeft, aIndex)
		recursed := commuteFermionic(recurseAnnihilators, recurseCreators)
		for i := range recursed {
			recursed[i].sign *= offsetSign
		}
		result = append(result, recursed...)
		// Parity for the commuted (uneliminated) branch: the creator is
		// swapped past every annihilator plus the creators before it, the
		// annihilator past every creator plus the annihilators after it.
		commutedSign := 1.0
		if (2*len(annihilatorsLeft)+len(creatorsRight)-aIndex+cIndex-2)%2 != 0 {
			commutedSign = -1.0
		}
		for _, t := range recursed {
			c := append([]int{creator}, t.creators...)
			a := append(slices.Clone(t.annihilators), creator)
			// t.sign already carries one offset factor; a second one makes
			// the offsets cancel for the commuted branch.
			result = append(result, caTerm{creators: c, annihilators: a, sign: t.sign * offsetSign * commutedSign})
		}

		return result
	}

	return append(result, caTerm{
		creators:     slices.Clone(creatorsRight),
		annihilators: slices.Clone(annihilatorsLeft),
		sign:         origSign,
	})
}

func without(indices []int, at int) []int {
	out := make([]int, 0, len(indices)-1)
	out = append(out, indices[:at]...)

	return append(out, indices[at+1:]...)
}

// String renders the canonical form: creators then annihilators, e.g.
// "c0c1a0a2", or "I" for the identity.
func (p FermionProduct) String() string {
	return terms.FormatLadder(p.creators, p.annihilators)
}

// ParseFermionProduct parses the canonical form produced by String.
func ParseFermionProduct(s string) (FermionProduct, error) {
	cr, an, err := terms.ParseLadder(s)
	if err != nil {
		return FermionProduct{}, err
	}

	return NewFermionProduct(cr, an)
}
