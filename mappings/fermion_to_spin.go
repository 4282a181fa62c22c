package mappings

import (
	"github.com/qusym/qusym/fermions"
	"github.com/qusym/qusym/spins"
	"github.com/qusym/qusym/terms"
)

func spinOptions(bound int) []spins.Option {
	if bound == terms.Unbounded {
		return nil
	}

	return []spins.Option{spins.WithSpins(bound)}
}

// identitySpins returns the operator 1 (the empty Pauli string).
func identitySpins() *spins.PauliOperator {
	out := spins.NewPauliOperator()
	_ = out.Add(spins.NewPauliProduct(), 1)

	return out
}

// pauliZString returns the single Pauli string Z_0…Z_{i−1}.
func pauliZString(i int) spins.PauliProduct {
	p := spins.NewPauliProduct()
	for k := 0; k < i; k++ {
		p = p.Z(k)
	}

	return p
}

// loweringAt returns the σ− image of a creator: Z-string·(X_i − i·Y_i)/2.
func loweringAt(i int) *spins.PauliOperator {
	z := pauliZString(i)
	out := spins.NewPauliOperator()
	_ = out.Add(z.X(i), 0.5)
	_ = out.Add(z.Y(i), complex(0, -0.5))

	return out
}

// raisingAt returns the σ+ image of an annihilator: Z-string·(X_i + i·Y_i)/2.
func raisingAt(i int) *spins.PauliOperator {
	z := pauliZString(i)
	out := spins.NewPauliOperator()
	_ = out.Add(z.X(i), 0.5)
	_ = out.Add(z.Y(i), complex(0, 0.5))

	return out
}

// FermionProductToSpins expands a normal-ordered ladder product into its
// Jordan-Wigner spin image: every creator becomes a dressed σ−, every
// annihilator a dressed σ+, multiplied in canonical order.
func FermionProductToSpins(p fermions.FermionProduct) *spins.PauliOperator {
	out := identitySpins()
	for _, c := range p.Creators() {
		out = out.Mul(loweringAt(c))
	}
	for _, a := range p.Annihilators() {
		out = out.Mul(raisingAt(a))
	}

	return out
}

// FermionOperatorToSpins lifts the transform linearly over an operator,
// carrying the declared mode bound over as the spin bound.
func FermionOperatorToSpins(op *fermions.FermionOperator) (*spins.PauliOperator, error) {
	out := spins.NewPauliOperator(spinOptions(op.Bound())...)
	for _, t := range op.Terms() {
		s := FermionProductToSpins(t.Key)
		s.Scale(t.Coefficient)
		for _, st := range s.Terms() {
			if err := out.Add(st.Key, st.Coefficient); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// FermionHamiltonianToSpins transforms a fermionic Hamiltonian into a
// spin Hamiltonian. The expanded self-adjoint operator transforms to an
// operator whose imaginary parts cancel exactly, Pauli strings being
// self-adjoint.
func FermionHamiltonianToSpins(h *fermions.FermionHamiltonian) (*spins.PauliHamiltonian, error) {
	expanded, err := FermionOperatorToSpins(h.ToOperator())
	if err != nil {
		return nil, err
	}
	out := spins.NewPauliHamiltonian(spinOptions(h.Bound())...)
	for _, t := range expanded.Terms() {
		if err := out.Add(t.Key, t.Coefficient); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// FermionNoiseToSpins transforms a fermionic Lindblad noise operator
// pair side by pair side into the decoherence basis, dropping identity
// components of each side.
func FermionNoiseToSpins(n *fermions.LindbladNoiseOperator) (*spins.LindbladNoiseOperator, error) {
	out := spins.NewLindbladNoiseOperator(spinOptions(n.Bound())...)
	for _, t := range n.Terms() {
		left := FermionProductToSpins(t.Key.Left)
		right := FermionProductToSpins(t.Key.Right)
		for _, lt := range left.Terms() {
			if lt.Key.IsIdentity() {
				continue
			}
			ld, lf := lt.Key.ToDecoherence()
			for _, rt := range right.Terms() {
				if rt.Key.IsIdentity() {
					continue
				}
				rd, rf := rt.Key.ToDecoherence()
				rCoeff := rt.Coefficient * rf
				rate := t.Coefficient * lt.Coefficient * lf * complex(real(rCoeff), -imag(rCoeff))
				if err := out.AddPair(ld, rd, rate); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// FermionOpenSystemToSpins transforms an open system component-wise.
func FermionOpenSystemToSpins(sys *fermions.LindbladOpenSystem) (*spins.LindbladOpenSystem, error) {
	system, err := FermionHamiltonianToSpins(sys.System())
	if err != nil {
		return nil, err
	}
	noise, err := FermionNoiseToSpins(sys.Noise())
	if err != nil {
		return nil, err
	}

	return spins.GroupLindbladOpenSystem(system, noise), nil
}
