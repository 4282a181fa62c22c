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

// MixedDecoherenceProduct is the mixed-subsystem analogue of a
// DecoherenceProduct: spin slots carry the decoherence alphabet
// (X, iY, Z) while ladder slots are plain boson and fermion products.
// It indexes Lindblad noise entries.
type MixedDecoherenceProduct struct {
	spins    []spins.DecoherenceProduct
	bosons   []bosons.BosonProduct
	fermions []fermions.FermionProduct
}

// MixedDecoherenceTerm is one weighted summand of a transformation or
// expansion of mixed decoherence products.
type MixedDecoherenceTerm struct {
	Product MixedDecoherenceProduct
	Factor  complex128
}

// NewMixedDecoherenceProduct builds a product from per-slot factors.
func NewMixedDecoherenceProduct(spinSlots []spins.DecoherenceProduct, bosonSlots []bosons.BosonProduct, fermionSlots []fermions.FermionProduct) MixedDecoherenceProduct {
	return MixedDecoherenceProduct{
		spins:    slices.Clone(spinSlots),
		bosons:   slices.Clone(bosonSlots),
		fermions: slices.Clone(fermionSlots),
	}
}

// Spins returns a copy of the spin slot factors.
func (p MixedDecoherenceProduct) Spins() []spins.DecoherenceProduct { return slices.Clone(p.spins) }

// Bosons returns a copy of the boson slot factors.
func (p MixedDecoherenceProduct) Bosons() []bosons.BosonProduct { return slices.Clone(p.bosons) }

// Fermions returns a copy of the fermion slot factors.
func (p MixedDecoherenceProduct) Fermions() []fermions.FermionProduct {
	return slices.Clone(p.fermions)
}

// Arity returns the number of spin, boson, and fermion slots.
func (p MixedDecoherenceProduct) Arity() (nSpins, nBosons, nFermions int) {
	return len(p.spins), len(p.bosons), len(p.fermions)
}

// SameArity reports whether both products have identical slot counts.
func (p MixedDecoherenceProduct) SameArity(other MixedDecoherenceProduct) bool {
	return len(p.spins) == len(other.spins) &&
		len(p.bosons) == len(other.bosons) &&
		len(p.fermions) == len(other.fermions)
}

// Sites returns the widest per-slot site span across all subsystems.
func (p MixedDecoherenceProduct) Sites() int {
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
func (p MixedDecoherenceProduct) Equal(other MixedDecoherenceProduct) bool {
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
// picks up: each iY symbol flips the sign, each fermion slot contributes
// its reversal sign.
func (p MixedDecoherenceProduct) HermitianConjugate() (MixedDecoherenceProduct, float64) {
	out := MixedDecoherenceProduct{
		spins:    make([]spins.DecoherenceProduct, len(p.spins)),
		bosons:   make([]bosons.BosonProduct, len(p.bosons)),
		fermions: make([]fermions.FermionProduct, len(p.fermions)),
	}
	sign := 1.0
	for i, s := range p.spins {
		conj, sg := s.HermitianConjugate()
		out.spins[i] = conj
		sign *= sg
	}
	for i, b := range p.bosons {
		out.bosons[i] = b.HermitianConjugate()
	}
	for i, f := range p.fermions {
		conj, sg := f.HermitianConjugate()
		out.fermions[i] = conj
		sign *= sg
	}

	return out, sign
}

// String renders one prefixed, colon-terminated segment per slot.
func (p MixedDecoherenceProduct) String() string {
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

// ParseMixedDecoherenceProduct parses the canonical form produced by
// String.
func ParseMixedDecoherenceProduct(s string) (MixedDecoherenceProduct, error) {
	var out MixedDecoherenceProduct
	for _, segment := range strings.Split(s, ":") {
		if segment == "" {
			continue
		}
		switch {
		case strings.HasPrefix(segment, "S"):
			sp, err := spins.ParseDecoherenceProduct(segment[1:])
			if err != nil {
				return MixedDecoherenceProduct{}, err
			}
			out.spins = append(out.spins, sp)
		case strings.HasPrefix(segment, "B"):
			bp, err := bosons.ParseBosonProduct(segment[1:])
			if err != nil {
				return MixedDecoherenceProduct{}, err
			}
			out.bosons = append(out.bosons, bp)
		case strings.HasPrefix(segment, "F"):
			fp, err := fermions.ParseFermionProduct(segment[1:])
			if err != nil {
				return MixedDecoherenceProduct{}, err
			}
			out.fermions = append(out.fermions, fp)
		default:
			return MixedDecoherenceProduct{}, fmt.Errorf("mixed decoherence product %q: subsystem %q is neither spin, boson, nor fermion: %w", s, segment, terms.ErrParse)
		}
	}

	return out, nil
}
