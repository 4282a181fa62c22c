package mappings

import (
	"github.com/qusym/qusym/fermions"
	"github.com/qusym/qusym/spins"
	"github.com/qusym/qusym/terms"
)

func fermionOptions(bound int) []fermions.Option {
	if bound == terms.Unbounded {
		return nil
	}

	return []fermions.Option{fermions.WithModes(bound)}
}

// identityFermions returns the operator 1 (the empty ladder product).
func identityFermions() *fermions.FermionOperator {
	out := fermions.NewFermionOperator()
	_ = out.Add(fermions.FermionProduct{}, 1)

	return out
}

// numberFactor returns 1 − 2·n_i, the Jordan-Wigner image of Z_i.
func numberFactor(i int) *fermions.FermionOperator {
	out := identityFermions()
	n, _ := fermions.NewFermionProduct([]int{i}, []int{i})
	_ = out.Add(n, -2)

	return out
}

// zString returns the product of (1 − 2·n_k) over k < i, expanded into
// ladder terms.
func zString(i int) *fermions.FermionOperator {
	out := identityFermions()
	for k := 0; k < i; k++ {
		out = out.Mul(numberFactor(k))
	}

	return out
}

func creatorAt(i int) fermions.FermionProduct {
	p, _ := fermions.NewFermionProduct([]int{i}, nil)

	return p
}

func annihilatorAt(i int) fermions.FermionProduct {
	p, _ := fermions.NewFermionProduct(nil, []int{i})

	return p
}

func pauliSiteToFermions(index int, op spins.Pauli) *fermions.FermionOperator {
	switch op {
	case spins.PauliZ:
		return numberFactor(index)
	case spins.PauliX:
		ladder := fermions.NewFermionOperator()
		_ = ladder.Add(creatorAt(index), 1)
		_ = ladder.Add(annihilatorAt(index), 1)

		return zString(index).Mul(ladder)
	case spins.PauliY:
		ladder := fermions.NewFermionOperator()
		_ = ladder.Add(creatorAt(index), complex(0, 1))
		_ = ladder.Add(annihilatorAt(index), complex(0, -1))

		return zString(index).Mul(ladder)
	default:
		return identityFermions()
	}
}

// PauliProductToFermions expands a Pauli string into its Jordan-Wigner
// fermionic image, multiplying the per-site expansions in ascending site
// order.
func PauliProductToFermions(p spins.PauliProduct) *fermions.FermionOperator {
	out := identityFermions()
	for _, f := range p.Factors() {
		out = out.Mul(pauliSiteToFermions(f.Index, f.Op))
	}

	return out
}

// DecoherenceProductToFermions transforms a decoherence string by
// rewriting it onto the Pauli basis first.
func DecoherenceProductToFermions(d spins.DecoherenceProduct) *fermions.FermionOperator {
	pp, factor := d.ToPauli()
	out := PauliProductToFermions(pp)
	out.Scale(factor)

	return out
}

// PlusMinusProductToFermions expands a plus/minus string directly:
// σ+ maps to a dressed annihilator, σ− to a dressed creator, Z to the
// number factor.
func PlusMinusProductToFermions(p spins.PlusMinusProduct) *fermions.FermionOperator {
	out := identityFermions()
	for _, f := range p.Factors() {
		switch f.Op {
		case spins.PMPlus:
			ladder := fermions.NewFermionOperator()
			_ = ladder.Add(annihilatorAt(f.Index), 1)
			out = out.Mul(zString(f.Index).Mul(ladder))
		case spins.PMMinus:
			ladder := fermions.NewFermionOperator()
			_ = ladder.Add(creatorAt(f.Index), 1)
			out = out.Mul(zString(f.Index).Mul(ladder))
		case spins.PMZ:
			out = out.Mul(numberFactor(f.Index))
		}
	}

	return out
}

// PauliOperatorToFermions lifts the transform linearly over an operator,
// carrying the declared spin bound over as the mode bound.
func PauliOperatorToFermions(op *spins.PauliOperator) (*fermions.FermionOperator, error) {
	out := fermions.NewFermionOperator(fermionOptions(op.Bound())...)
	for _, t := range op.Terms() {
		f := PauliProductToFermions(t.Key)
		f.Scale(t.Coefficient)
		for _, ft := range f.Terms() {
			if err := out.Add(ft.Key, ft.Coefficient); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// DecoherenceOperatorToFermions lifts the transform linearly over a
// decoherence operator.
func DecoherenceOperatorToFermions(op *spins.DecoherenceOperator) (*fermions.FermionOperator, error) {
	out := fermions.NewFermionOperator(fermionOptions(op.Bound())...)
	for _, t := range op.Terms() {
		f := DecoherenceProductToFermions(t.Key)
		f.Scale(t.Coefficient)
		for _, ft := range f.Terms() {
			if err := out.Add(ft.Key, ft.Coefficient); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// PlusMinusOperatorToFermions lifts the transform linearly over a
// plus/minus operator.
func PlusMinusOperatorToFermions(op *spins.PlusMinusOperator) (*fermions.FermionOperator, error) {
	out := fermions.NewFermionOperator(fermionOptions(op.Bound())...)
	for _, t := range op.Terms() {
		f := PlusMinusProductToFermions(t.Key)
		f.Scale(t.Coefficient)
		for _, ft := range f.Terms() {
			if err := out.Add(ft.Key, ft.Coefficient); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// PauliHamiltonianToFermions transforms a spin Hamiltonian into a
// fermionic Hamiltonian. The expanded fermionic image of a self-adjoint
// operator pairs every term with its conjugate, so only orbit
// representatives are stored; their coefficients carry the full
// information.
func PauliHamiltonianToFermions(h *spins.PauliHamiltonian) (*fermions.FermionHamiltonian, error) {
	expanded, err := PauliOperatorToFermions(h.ToOperator())
	if err != nil {
		return nil, err
	}
	out := fermions.NewFermionHamiltonian(fermionOptions(h.Bound())...)
	for _, t := range expanded.Terms() {
		rep, v, err := fermions.CanonicalHermitianFermionPair(t.Key.Creators(), t.Key.Annihilators(), t.Coefficient)
		if err != nil {
			return nil, err
		}
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

// SpinNoiseToFermions transforms a spin Lindblad noise operator pair
// side by pair side. Identity components of each side are dropped: the
// identity commutes out of the dissipator.
func SpinNoiseToFermions(n *spins.LindbladNoiseOperator) (*fermions.LindbladNoiseOperator, error) {
	out := fermions.NewLindbladNoiseOperator(fermionOptions(n.Bound())...)
	for _, t := range n.Terms() {
		left := DecoherenceProductToFermions(t.Key.Left)
		right := DecoherenceProductToFermions(t.Key.Right)
		for _, lt := range left.Terms() {
			if lt.Key.IsIdentity() {
				continue
			}
			for _, rt := range right.Terms() {
				if rt.Key.IsIdentity() {
					continue
				}
				rate := t.Coefficient * lt.Coefficient * complex(real(rt.Coefficient), -imag(rt.Coefficient))
				if err := out.AddPair(lt.Key, rt.Key, rate); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// PlusMinusNoiseToFermions transforms a plus/minus Lindblad noise
// operator pair side by pair side, dropping identity components.
func PlusMinusNoiseToFermions(n *spins.PlusMinusNoiseOperator) (*fermions.LindbladNoiseOperator, error) {
	out := fermions.NewLindbladNoiseOperator(fermionOptions(n.Bound())...)
	for _, t := range n.Terms() {
		left := PlusMinusProductToFermions(t.Key.Left)
		right := PlusMinusProductToFermions(t.Key.Right)
		for _, lt := range left.Terms() {
			if lt.Key.IsIdentity() {
				continue
			}
			for _, rt := range right.Terms() {
				if rt.Key.IsIdentity() {
					continue
				}
				rate := t.Coefficient * lt.Coefficient * complex(real(rt.Coefficient), -imag(rt.Coefficient))
				if err := out.AddPair(lt.Key, rt.Key, rate); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// SpinOpenSystemToFermions transforms an open system component-wise.
func SpinOpenSystemToFermions(sys *spins.LindbladOpenSystem) (*fermions.LindbladOpenSystem, error) {
	system, err := PauliHamiltonianToFermions(sys.System())
	if err != nil {
		return nil, err
	}
	noise, err := SpinNoiseToFermions(sys.Noise())
	if err != nil {
		return nil, err
	}

	return fermions.GroupLindbladOpenSystem(system, noise), nil
}
