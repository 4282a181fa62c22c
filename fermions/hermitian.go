package fermions

import (
	"fmt"
	"slices"

	"github.com/qusym/qusym/terms"
)

// HermitianFermionProduct names a conjugate pair {P, P†} of fermionic
// products by its canonical representative: the member whose creator
// index sequence compares no greater than its annihilator sequence
// (element-wise, annihilator-exhausted-first ties conjugate). Inside a
// FermionHamiltonian a representative with value v stands for
// v·P + sign·conj(v)·P†, the self-adjoint completion.
type HermitianFermionProduct struct {
	creators     []int
	annihilators []int
}

// NewHermitianFermionProduct builds the representative of the conjugate
// orbit spanned by the given index lists: lists are sorted ascending, and
// a non-representative orientation is replaced by its conjugate. A
// repeated index within one list fails with terms.ErrDuplicateIndex.
//
// The bare constructor names the orbit only; to fold an accompanying
// coefficient (conjugating and applying the anticommutation sign when the
// orientation flips) use CanonicalHermitianFermionPair.
func NewHermitianFermionProduct(creators, annihilators []int) (HermitianFermionProduct, error) {
	cr, dup, _ := terms.SortSigned(creators)
	if dup {
		return HermitianFermionProduct{}, fmt.Errorf("creators %v: %w", creators, terms.ErrDuplicateIndex)
	}
	an, dup, _ := terms.SortSigned(annihilators)
	if dup {
		return HermitianFermionProduct{}, fmt.Errorf("annihilators %v: %w", annihilators, terms.ErrDuplicateIndex)
	}
	if conjugateIsRepresentative(cr, an) {
		cr, an = an, cr
	}

	return HermitianFermionProduct{creators: cr, annihilators: an}, nil
}

// CanonicalHermitianFermionPair canonicalizes two raw index lists with a
// coefficient into (representative, transformed coefficient): sorting
// folds the anticommutation parity into value, and a non-representative
// orientation is conjugated — swapping the lists, conjugating the value,
// and applying the reversal sign of the true adjoint.
func CanonicalHermitianFermionPair(creators, annihilators []int, value complex128) (HermitianFermionProduct, complex128, error) {
	prod, value, err := CanonicalFermionPair(creators, annihilators, value)
	if err != nil {
		return HermitianFermionProduct{}, 0, err
	}
	if conjugateIsRepresentative(prod.creators, prod.annihilators) {
		conj, sign := prod.HermitianConjugate()
		prod = conj
		value = complex(sign, 0) * complex(real(value), -imag(value))
	}

	return HermitianFermionProduct{creators: prod.creators, annihilators: prod.annihilators}, value, nil
}

// conjugateIsRepresentative reports whether the conjugate orientation
// (annihilators as creators) is the canonical representative of the
// orbit. Both lists are sorted ascending.
func conjugateIsRepresentative(creators, annihilators []int) bool {
	equal := 0
	for i := 0; i < len(creators) && i < len(annihilators); i++ {
		switch {
		case annihilators[i] < creators[i]:
			return true
		case annihilators[i] > creators[i]:
			return false
		default:
			equal++
		}
	}

	// All compared positions equal: a strictly longer creator list means
	// the annihilator side ran out first, which conjugates.
	return len(creators) > equal && len(annihilators) == equal
}

// ToProduct widens the representative into a plain FermionProduct.
func (h HermitianFermionProduct) ToProduct() FermionProduct {
	return FermionProduct{creators: slices.Clone(h.creators), annihilators: slices.Clone(h.annihilators)}
}

// ConjugateSign returns the anticommutation sign relating the stored
// representative P to its true adjoint: P† = sign · swap(P).
func (h HermitianFermionProduct) ConjugateSign() float64 {
	_, sign := h.ToProduct().HermitianConjugate()

	return sign
}

// Creators returns a copy of the creation indices, ascending.
func (h HermitianFermionProduct) Creators() []int { return slices.Clone(h.creators) }

// Annihilators returns a copy of the annihilation indices, ascending.
func (h HermitianFermionProduct) Annihilators() []int { return slices.Clone(h.annihilators) }

// IsNaturalHermitian reports whether the representative is self-conjugate
// (a diagonal term).
func (h HermitianFermionProduct) IsNaturalHermitian() bool {
	return slices.Equal(h.creators, h.annihilators)
}

// IsIdentity reports whether the product contains no ladder operators.
func (h HermitianFermionProduct) IsIdentity() bool {
	return len(h.creators) == 0 && len(h.annihilators) == 0
}

// Sites returns one past the highest orbital index the product touches.
func (h HermitianFermionProduct) Sites() int { return h.ToProduct().Sites() }

// Equal reports structural equality of the canonical forms.
func (h HermitianFermionProduct) Equal(other HermitianFermionProduct) bool {
	return slices.Equal(h.creators, other.creators) &&
		slices.Equal(h.annihilators, other.annihilators)
}

// String renders the canonical form of the representative, e.g. "c0a1".
func (h HermitianFermionProduct) String() string {
	return terms.FormatLadder(h.creators, h.annihilators)
}

// ParseHermitianFermionProduct parses the canonical form produced by
// String, folding a non-representative orientation onto its conjugate.
func ParseHermitianFermionProduct(s string) (HermitianFermionProduct, error) {
	cr, an, err := terms.ParseLadder(s)
	if err != nil {
		return HermitianFermionProduct{}, err
	}

	return NewHermitianFermionProduct(cr, an)
}
