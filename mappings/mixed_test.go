package mappings_test

import (
	"testing"

	"github.com/qusym/qusym/bosons"
	"github.com/qusym/qusym/fermions"
	"github.com/qusym/qusym/mappings"
	"github.com/qusym/qusym/mixed"
	"github.com/qusym/qusym/spins"
	"github.com/qusym/qusym/terms"
	"github.com/stretchr/testify/require"
)

func bosonSlot(t *testing.T, form string) bosons.BosonProduct {
	t.Helper()
	p, err := bosons.ParseBosonProduct(form)
	require.NoError(t, err)

	return p
}

func fermionSlot(t *testing.T, form string) fermions.FermionProduct {
	t.Helper()
	p, err := fermions.ParseFermionProduct(form)
	require.NoError(t, err)

	return p
}

func TestMixedProductSpinSlotToFermions(t *testing.T) {
	p := mixed.NewMixedProduct(
		[]spins.PauliProduct{spins.NewPauliProduct().Z(0)},
		[]bosons.BosonProduct{bosonSlot(t, "I")},
		nil,
	)

	expanded, err := mappings.MixedProductSpinSlotToFermions(p, 0)
	require.NoError(t, err)
	require.Len(t, expanded, 2)

	// Z0 → 1 − 2·c0a0; the spin slot vanishes and a fermion slot appears.
	require.Equal(t, "BI:FI:", expanded[0].Product.String())
	require.Equal(t, complex128(1), expanded[0].Factor)
	require.Equal(t, "BI:Fc0a0:", expanded[1].Product.String())
	require.Equal(t, complex128(-2), expanded[1].Factor)

	nSpins, nBosons, nFermions := expanded[0].Product.Arity()
	require.Equal(t, [3]int{0, 1, 1}, [3]int{nSpins, nBosons, nFermions})
}

func TestMixedProductSpinSlotToFermions_SlotOutOfRange(t *testing.T) {
	p := mixed.NewMixedProduct([]spins.PauliProduct{spins.NewPauliProduct().Z(0)}, nil, nil)

	_, err := mappings.MixedProductSpinSlotToFermions(p, 1)
	require.ErrorIs(t, err, terms.ErrIndexOutOfRange)
	_, err = mappings.MixedProductSpinSlotToFermions(p, -1)
	require.ErrorIs(t, err, terms.ErrIndexOutOfRange)
}

func TestMixedOperatorSpinSlotToFermions(t *testing.T) {
	op := mixed.NewMixedOperator(1, 0, 0)
	x := mixed.NewMixedProduct([]spins.PauliProduct{spins.NewPauliProduct().X(0)}, nil, nil)
	require.NoError(t, op.Add(x, 2))

	out, err := mappings.MixedOperatorSpinSlotToFermions(op, 0)
	require.NoError(t, err)
	nSpins, nBosons, nFermions := out.Arity()
	require.Equal(t, [3]int{0, 0, 1}, [3]int{nSpins, nBosons, nFermions})

	// X0 → c0 + a0, scaled by the original coefficient.
	require.Equal(t, 2, out.Len())
	require.Equal(t, complex128(2), out.Get(mixed.NewMixedProduct(nil, nil, []fermions.FermionProduct{fermionSlot(t, "c0")})))
	require.Equal(t, complex128(2), out.Get(mixed.NewMixedProduct(nil, nil, []fermions.FermionProduct{fermionSlot(t, "a0")})))

	_, err = mappings.MixedOperatorSpinSlotToFermions(op, 3)
	require.ErrorIs(t, err, terms.ErrIndexOutOfRange)
}

func TestMixedHamiltonianSpinSlotToFermions_Diagonal(t *testing.T) {
	h := mixed.NewMixedHamiltonian(1, 0, 0)
	z := mixed.NewHermitianMixedProduct([]spins.PauliProduct{spins.NewPauliProduct().Z(0)}, nil, nil)
	require.NoError(t, h.Add(z, 2))

	out, err := mappings.MixedHamiltonianSpinSlotToFermions(h, 0)
	require.NoError(t, err)

	identity := mixed.NewMixedProduct(nil, nil, []fermions.FermionProduct{fermionSlot(t, "I")})
	number := mixed.NewMixedProduct(nil, nil, []fermions.FermionProduct{fermionSlot(t, "c0a0")})
	require.Equal(t, complex128(2), out.GetProduct(identity))
	require.Equal(t, complex128(-4), out.GetProduct(number))
}

func TestMixedHamiltonianSpinSlotToFermions_FoldsConjugatePairs(t *testing.T) {
	// X0 expands into c0 + a0; the two orientations refold onto a single
	// representative entry that regenerates both.
	h := mixed.NewMixedHamiltonian(1, 0, 0)
	x := mixed.NewHermitianMixedProduct([]spins.PauliProduct{spins.NewPauliProduct().X(0)}, nil, nil)
	require.NoError(t, h.Add(x, 2))

	out, err := mappings.MixedHamiltonianSpinSlotToFermions(h, 0)
	require.NoError(t, err)

	creator := mixed.NewMixedProduct(nil, nil, []fermions.FermionProduct{fermionSlot(t, "c0")})
	annihilator := mixed.NewMixedProduct(nil, nil, []fermions.FermionProduct{fermionSlot(t, "a0")})
	require.Equal(t, complex128(2), out.GetProduct(annihilator))
	require.Equal(t, complex128(2), out.GetProduct(creator))
}

func TestMixedNoiseSpinSlotToFermions(t *testing.T) {
	n := mixed.NewMixedNoiseOperator(1, 0, 0)
	dz := mixed.NewMixedDecoherenceProduct(
		[]spins.DecoherenceProduct{spins.NewDecoherenceProduct().Z(0)}, nil, nil,
	)
	require.NoError(t, n.AddPair(dz, dz, 1))

	out, err := mappings.MixedNoiseSpinSlotToFermions(n, 0)
	require.NoError(t, err)
	nSpins, nBosons, nFermions := out.Arity()
	require.Equal(t, [3]int{0, 0, 1}, [3]int{nSpins, nBosons, nFermions})

	// Both sides expand into 1 − 2·c0a0, giving four rate entries.
	identity := mixed.NewMixedDecoherenceProduct(nil, nil, []fermions.FermionProduct{fermionSlot(t, "I")})
	number := mixed.NewMixedDecoherenceProduct(nil, nil, []fermions.FermionProduct{fermionSlot(t, "c0a0")})
	require.Equal(t, 4, out.Len())
	require.Equal(t, complex128(1), out.GetPair(identity, identity))
	require.Equal(t, complex128(-2), out.GetPair(identity, number))
	require.Equal(t, complex128(-2), out.GetPair(number, identity))
	require.Equal(t, complex128(4), out.GetPair(number, number))
}

func TestMixedOpenSystemSpinSlotToFermions(t *testing.T) {
	sys := mixed.NewMixedOpenSystem(1, 0, 0)
	z := mixed.NewHermitianMixedProduct([]spins.PauliProduct{spins.NewPauliProduct().Z(0)}, nil, nil)
	require.NoError(t, sys.SystemAdd(z, 2))
	dz := mixed.NewMixedDecoherenceProduct(
		[]spins.DecoherenceProduct{spins.NewDecoherenceProduct().Z(0)}, nil, nil,
	)
	require.NoError(t, sys.NoiseAdd(dz, dz, 1))

	out, err := mappings.MixedOpenSystemSpinSlotToFermions(sys, 0)
	require.NoError(t, err)

	number := mixed.NewMixedProduct(nil, nil, []fermions.FermionProduct{fermionSlot(t, "c0a0")})
	require.Equal(t, complex128(-4), out.System().GetProduct(number))
	numberD := mixed.NewMixedDecoherenceProduct(nil, nil, []fermions.FermionProduct{fermionSlot(t, "c0a0")})
	require.Equal(t, complex128(4), out.Noise().GetPair(numberD, numberD))
}
