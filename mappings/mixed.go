package mappings

import (
	"fmt"
	"slices"

	"github.com/qusym/qusym/mixed"
	"github.com/qusym/qusym/terms"
)

// MixedProductSpinSlotToFermions rewrites one spin slot of a mixed
// product into its Jordan-Wigner fermionic image. The chosen spin slot
// is removed and each resulting ladder product is appended as a new
// fermion slot, so a product of arity (S, B, F) expands into terms of
// arity (S−1, B, F+1); every other slot passes through unchanged. A slot
// index outside the spin slots fails with terms.ErrIndexOutOfRange.
func MixedProductSpinSlotToFermions(p mixed.MixedProduct, slot int) ([]mixed.MixedTerm, error) {
	spinSlots := p.Spins()
	if slot < 0 || slot >= len(spinSlots) {
		return nil, fmt.Errorf("spin slot %d of %d: %w", slot, len(spinSlots), terms.ErrIndexOutOfRange)
	}
	image := PauliProductToFermions(spinSlots[slot])
	rest := slices.Delete(spinSlots, slot, slot+1)

	out := make([]mixed.MixedTerm, 0, image.Len())
	for _, t := range image.Terms() {
		fermionSlots := append(p.Fermions(), t.Key)
		out = append(out, mixed.MixedTerm{
			Product: mixed.NewMixedProduct(rest, p.Bosons(), fermionSlots),
			Factor:  t.Coefficient,
		})
	}

	return out, nil
}

// MixedDecoherenceProductSpinSlotToFermions is the decoherence-basis
// analogue of MixedProductSpinSlotToFermions.
func MixedDecoherenceProductSpinSlotToFermions(p mixed.MixedDecoherenceProduct, slot int) ([]mixed.MixedDecoherenceTerm, error) {
	spinSlots := p.Spins()
	if slot < 0 || slot >= len(spinSlots) {
		return nil, fmt.Errorf("spin slot %d of %d: %w", slot, len(spinSlots), terms.ErrIndexOutOfRange)
	}
	image := DecoherenceProductToFermions(spinSlots[slot])
	rest := slices.Delete(spinSlots, slot, slot+1)

	out := make([]mixed.MixedDecoherenceTerm, 0, image.Len())
	for _, t := range image.Terms() {
		fermionSlots := append(p.Fermions(), t.Key)
		out = append(out, mixed.MixedDecoherenceTerm{
			Product: mixed.NewMixedDecoherenceProduct(rest, p.Bosons(), fermionSlots),
			Factor:  t.Coefficient,
		})
	}

	return out, nil
}

// MixedOperatorSpinSlotToFermions lifts the per-slot transform linearly
// over a mixed operator, shrinking the spin arity by one and growing the
// fermion arity by one.
func MixedOperatorSpinSlotToFermions(op *mixed.MixedOperator, slot int) (*mixed.MixedOperator, error) {
	nSpins, nBosons, nFermions := op.Arity()
	if slot < 0 || slot >= nSpins {
		return nil, fmt.Errorf("spin slot %d of %d: %w", slot, nSpins, terms.ErrIndexOutOfRange)
	}
	out := mixed.NewMixedOperator(nSpins-1, nBosons, nFermions+1)
	for _, t := range op.Terms() {
		expanded, err := MixedProductSpinSlotToFermions(t.Key, slot)
		if err != nil {
			return nil, err
		}
		for _, mt := range expanded {
			if err := out.Add(mt.Product, mt.Factor*t.Coefficient); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// MixedHamiltonianSpinSlotToFermions transforms a mixed Hamiltonian by
// expanding it to the full operator, transforming the chosen spin slot,
// and refolding onto conjugate-pair representatives.
func MixedHamiltonianSpinSlotToFermions(h *mixed.MixedHamiltonian, slot int) (*mixed.MixedHamiltonian, error) {
	nSpins, nBosons, nFermions := h.Arity()
	if slot < 0 || slot >= nSpins {
		return nil, fmt.Errorf("spin slot %d of %d: %w", slot, nSpins, terms.ErrIndexOutOfRange)
	}
	expanded, err := MixedOperatorSpinSlotToFermions(h.ToOperator(), slot)
	if err != nil {
		return nil, err
	}
	out := mixed.NewMixedHamiltonian(nSpins-1, nBosons, nFermions+1)
	for _, t := range expanded.Terms() {
		rep, v := mixed.CanonicalHermitianMixedPair(t.Key, t.Coefficient)
		if !t.Key.Equal(rep.ToProduct()) {
			// Conjugate orientation: its representative partner carries
			// the same information.
			continue
		}
		if err := out.Add(rep, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MixedNoiseSpinSlotToFermions transforms a mixed Lindblad noise
// operator pair side by pair side.
func MixedNoiseSpinSlotToFermions(n *mixed.MixedNoiseOperator, slot int) (*mixed.MixedNoiseOperator, error) {
	nSpins, nBosons, nFermions := n.Arity()
	if slot < 0 || slot >= nSpins {
		return nil, fmt.Errorf("spin slot %d of %d: %w", slot, nSpins, terms.ErrIndexOutOfRange)
	}
	out := mixed.NewMixedNoiseOperator(nSpins-1, nBosons, nFermions+1)
	for _, t := range n.Terms() {
		left, err := MixedDecoherenceProductSpinSlotToFermions(t.Key.Left, slot)
		if err != nil {
			return nil, err
		}
		right, err := MixedDecoherenceProductSpinSlotToFermions(t.Key.Right, slot)
		if err != nil {
			return nil, err
		}
		for _, lt := range left {
			for _, rt := range right {
				rate := t.Coefficient * lt.Factor * complex(real(rt.Factor), -imag(rt.Factor))
				if err := out.AddPair(lt.Product, rt.Product, rate); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// MixedOpenSystemSpinSlotToFermions transforms an open system
// component-wise.
func MixedOpenSystemSpinSlotToFermions(sys *mixed.MixedOpenSystem, slot int) (*mixed.MixedOpenSystem, error) {
	system, err := MixedHamiltonianSpinSlotToFermions(sys.System(), slot)
	if err != nil {
		return nil, err
	}
	noise, err := MixedNoiseSpinSlotToFermions(sys.Noise(), slot)
	if err != nil {
		return nil, err
	}

	return mixed.GroupMixedOpenSystem(system, noise)
}
