package mixed

import (
	"fmt"
	"slices"
	"strings"

	"github.com/qusym/qusym/bosons"
	"github.com/qusym/qusym/fermions"
	"github.com/qusym/qusym/spins"
	"github.com/qusym/qusym/terms"
)

// MixedProduct is a tensor product over a fixed arrangement of spin,
// boson, and fermion subsystems: one PauliProduct per spin slot, one
// BosonProduct per boson slot, one FermionProduct per fermion slot.
// Products are immutable values; the slot counts are the product's
// arity.
type MixedProduct struct {
	spins    []spins.PauliProduct
	bosons   []bosons.BosonProduct
	fermions []fermions.FermionProduct
}

// MixedTerm is one summand of a mixed-product multiplication.
type MixedTerm struct {
	Product MixedProduct
	Factor  complex128
}

// NewMixedProduct builds a product from per-slot factors. The slices
// are copied; slot factors are already canonical by construction.
func NewMixedProduct(spinSlots []spins.PauliProduct, bosonSlots []bosons.BosonProduct, fermionSlots []fermions.FermionProduct) MixedProduct {
	return MixedProduct{
		spins:    slices.Clone(spinSlots),
		bosons:   slices.Clone(bosonSlots),
		fermions: slices.Clone(fermionSlots),
	}
}

// Spins returns a copy of the spin slot factors.
func (p MixedProduct) Spins() []spins.PauliProduct { return slices.Clone(p.spins) }

// Bosons returns a copy of the boson slot factors.
func (p MixedProduct) Bosons() []bosons.BosonProduct { return slices.Clone(p.bosons) }

// Fermions returns a copy of the fermion slot factors.
func (p MixedProduct) Fermions() []fermions.FermionProduct { return slices.Clone(p.fermions) }

// Arity returns the number of spin, boson, and fermion slots.
func (p MixedProduct) Arity() (nSpins, nBosons, nFermions int) {
	return len(p.spins), len(p.bosons), len(p.fermions)
}

// SameArity reports whether both products have identical slot counts.
func (p MixedProduct) SameArity(other MixedProduct) bool {
	return len(p.spins) == len(other.spins) &&
		len(p.bosons) == len(other.bosons) &&
		len(p.fermions) == len(other.fermions)
}

// IsIdentity reports whether every slot is the identity.
func (p MixedProduct) IsIdentity() bool {
	for _, s := range p.spins {
		if !s.IsIdentity() {
			return false
		}
	}
	for _, b := range p.bosons {
		if !b.IsIdentity() {
			return false
		}
	}
	for _, f := range p.fermions {
		if !f.IsIdentity() {
			return false
		}
	}

	return true
}

// IsNaturalHermitian reports whether the product equals its own adjoint.
// Spin slots are always self-adjoint; every ladder slot must be.
func (p MixedProduct) IsNaturalHermitian() bool {
	for _, b := range p.bosons {
		if !b.IsNaturalHermitian() {
			return false
		}
	}
	for _, f := range p.fermions {
		if !f.IsNaturalHermitian() {
			return false
		}
	}

	return true
}

// Sites returns the widest per-slot site span across all subsystems.
func (p MixedProduct) Sites() int {
	span := 0
	for _, s := range p.spins {
		span = max(span, s.Sites())
	}
	for _, b := range p.bosons {
		span = max(span, b.Sites())
	}
	for _, f := range p.fermions {
		span = max(span, f.Sites())
	}

	return span
}

// Equal reports structural equality of the canonical forms.
func (p MixedProduct) Equal(other MixedProduct) bool {
	if !p.SameArity(other) {
		return false
	}
	for i := range p.spins {
		if !p.spins[i].Equal(other.spins[i]) {
			return false
		}
	}
	for i := range p.bosons {
		if !p.bosons[i].Equal(other.bosons[i]) {
			return false
		}
	}
	for i := range p.fermions {
		if !p.fermions[i].Equal(other.fermions[i]) {
			return false
		}
	}

	return true
}

// HermitianConjugate returns the slot-wise adjoint and the real sign it
// picks up. Spin slots conjugate to themselves; each fermion slot
// contributes its reversal sign.
func (p MixedProduct) HermitianConjugate() (MixedProduct, float64) {
	out := MixedProduct{
		spins:    slices.Clone(p.spins),
		bosons:   make([]bosons.BosonProduct, len(p.bosons)),
		fermions: make([]fermions.FermionProduct, len(p.fermions)),
	}
	sign := 1.0
	for i, b := range p.bosons {
		out.bosons[i] = b.HermitianConjugate()
	}
	for i, f := range p.fermions {
		conj, s := f.HermitianConjugate()
		out.fermions[i] = conj
		sign *= s
	}

	return out, sign
}

// Mul expands p·rhs slot by slot: spin slots multiply to a single
// product with a phase, ladder slots each normal-order into a sum, and
// the result runs over every combination of slot summands. Mismatched
// arity fails with terms.ErrSlotArityMismatch.
func (p MixedProduct) Mul(rhs MixedProduct) ([]MixedTerm, error) {
	if !p.SameArity(rhs) {
		return nil, fmt.Errorf("product %s times %s: %w", p, rhs, terms.ErrSlotArityMismatch)
	}

	factor := complex(1, 0)
	spinSlots := make([]spins.PauliProduct, len(p.spins))
	for i := range p.spins {
		prod, phase := p.spins[i].Mul(rhs.spins[i])
		spinSlots[i] = prod
		factor *= phase
	}

	bosonCombos := [][]bosons.BosonProduct{nil}
	for i := range p.bosons {
		expanded := p.bosons[i].Mul(rhs.bosons[i])
		next := make([][]bosons.BosonProduct, 0, len(bosonCombos)*len(expanded))
		for _, combo := range bosonCombos {
			for _, bp := range expanded {
				grown := append(slices.Clone(combo), bp)
				next = append(next, grown)
			}
		}
		bosonCombos = next
	}

	type signedCombo struct {
		slots []fermions.FermionProduct
		sign  float64
	}
	fermionCombos := []signedCombo{{sign: 1}}
	for i := range p.fermions {
		expanded := p.fermions[i].Mul(rhs.fermions[i])
		next := make([]signedCombo, 0, len(fermionCombos)*len(expanded))
		for _, combo := range fermionCombos {
			for _, ft := range expanded {
				next = append(next, signedCombo{
					slots: append(slices.Clone(combo.slots), ft.Product),
					sign:  combo.sign * ft.Sign,
				})
			}
		}
		fermionCombos = next
	}

	out := make([]MixedTerm, 0, len(bosonCombos)*len(fermionCombos))
	for _, bc := range bosonCombos {
		for _, fc := range fermionCombos {
			out = append(out, MixedTerm{
				Product: NewMixedProduct(spinSlots, bc, fc.slots),
				Factor:  factor * complex(fc.sign, 0),
			})
		}
	}

	return out, nil
}

// String renders one prefixed, colon-terminated segment per slot, e.g.
// "S0X1Y:Bc0a1:Fc0a0:". A product with no slots renders as the empty
// string.
func (p MixedProduct) String() string {
	var b strings.Builder
	for _, s := range p.spins {
		b.WriteByte('S')
		b.WriteString(s.String())
		b.WriteByte(':')
	}
	for _, bp := range p.bosons {
		b.WriteByte('B')
		b.WriteString(bp.String())
		b.WriteByte(':')
	}
	for _, f := range p.fermions {
		b.WriteByte('F')
		b.WriteString(f.String())
		b.WriteByte(':')
	}

	return b.String()
}

// ParseMixedProduct parses the canonical form produced by String. Each
// colon-separated segment is routed by its S/B/F prefix; segments of one
// family may appear in any order but keep their relative order as slots.
func ParseMixedProduct(s string) (MixedProduct, error) {
	var out MixedProduct
	for _, segment := range strings.Split(s, ":") {
		if segment == "" {
			continue
		}
		switch {
		case strings.HasPrefix(segment, "S"):
			sp, err := spins.ParsePauliProduct(segment[1:])
			if err != nil {
				return MixedProduct{}, err
			}
			out.spins = append(out.spins, sp)
		case strings.HasPrefix(segment, "B"):
			bp, err := bosons.ParseBosonProduct(segment[1:])
			if err != nil {
				return MixedProduct{}, err
			}
			out.bosons = append(out.bosons, bp)
		case strings.HasPrefix(segment, "F"):
			fp, err := fermions.ParseFermionProduct(segment[1:])
			if err != nil {
				return MixedProduct{}, err
			}
			out.fermions = append(out.fermions, fp)
		default:
			return MixedProduct{}, fmt.Errorf("mixed product %q: subsystem %q is neither spin, boson, nor fermion: %w", s, segment, terms.ErrParse)
		}
	}

	return out, nil
}
