package mixed_test

import (
	"testing"

	"github.com/qusym/qusym/bosons"
	"github.com/qusym/qusym/fermions"
	"github.com/qusym/qusym/mixed"
	"github.com/qusym/qusym/spins"
	"github.com/qusym/qusym/terms"
	"github.com/stretchr/testify/require"
)

func TestMixedOperator_RejectsWrongShape(t *testing.T) {
	op := mixed.NewMixedOperator(1, 0, 1)
	good := mixed.NewMixedProduct(
		[]spins.PauliProduct{spins.NewPauliProduct().X(0)},
		nil,
		[]fermions.FermionProduct{mustFermion(t, []int{0}, nil)},
	)
	require.NoError(t, op.Add(good, 1))

	bad := mixed.NewMixedProduct(nil, nil, []fermions.FermionProduct{mustFermion(t, []int{0}, nil)})
	require.ErrorIs(t, op.Add(bad, 1), terms.ErrSlotArityMismatch)
	require.ErrorIs(t, op.Set(bad, 1), terms.ErrSlotArityMismatch)
}

func TestMixedOperator_AddOperatorShapeMismatch(t *testing.T) {
	a := mixed.NewMixedOperator(1, 0, 0)
	b := mixed.NewMixedOperator(0, 1, 0)
	require.ErrorIs(t, a.AddOperator(b), terms.ErrSlotArityMismatch)
	_, err := a.Mul(b)
	require.ErrorIs(t, err, terms.ErrSlotArityMismatch)
}

func TestMixedOperator_Mul(t *testing.T) {
	a := mixed.NewMixedOperator(1, 0, 0)
	require.NoError(t, a.Add(mixed.NewMixedProduct([]spins.PauliProduct{spins.NewPauliProduct().X(0)}, nil, nil), 2))
	b := mixed.NewMixedOperator(1, 0, 0)
	require.NoError(t, b.Add(mixed.NewMixedProduct([]spins.PauliProduct{spins.NewPauliProduct().Y(0)}, nil, nil), 3))

	prod, err := a.Mul(b)
	require.NoError(t, err)
	z := mixed.NewMixedProduct([]spins.PauliProduct{spins.NewPauliProduct().Z(0)}, nil, nil)
	require.Equal(t, complex128(6i), prod.Get(z))
}

func TestParseMixedOperator_RoundTrip(t *testing.T) {
	op := mixed.NewMixedOperator(1, 1, 1)
	p := mixed.NewMixedProduct(
		[]spins.PauliProduct{spins.NewPauliProduct().Z(0)},
		[]bosons.BosonProduct{mustBoson(t, []int{0}, nil)},
		[]fermions.FermionProduct{mustFermion(t, nil, []int{1})},
	)
	require.NoError(t, op.Add(p, 2-1i))

	back, err := mixed.ParseMixedOperator(op.String(), 1, 1, 1)
	require.NoError(t, err)
	require.True(t, op.Equal(back))

	// Parsing into a mismatched shape fails.
	_, err = mixed.ParseMixedOperator(op.String(), 2, 1, 1)
	require.ErrorIs(t, err, terms.ErrSlotArityMismatch)
}

func TestParseMixedHamiltonian_RoundTrip(t *testing.T) {
	m := mixed.NewMixedHamiltonian(1, 0, 1)
	h := mixed.NewHermitianMixedProduct(
		[]spins.PauliProduct{spins.NewPauliProduct().Z(0)},
		nil,
		[]fermions.FermionProduct{mustFermion(t, []int{0}, []int{1})},
	)
	require.NoError(t, m.Add(h, 1+2i))

	back, err := mixed.ParseMixedHamiltonian(m.String(), 1, 0, 1)
	require.NoError(t, err)
	require.True(t, m.Equal(back))
}

func TestMixedNoiseOperator_ShapeAndPairs(t *testing.T) {
	n := mixed.NewMixedNoiseOperator(1, 0, 0)
	l := mixed.NewMixedDecoherenceProduct([]spins.DecoherenceProduct{spins.NewDecoherenceProduct().X(0)}, nil, nil)
	r := mixed.NewMixedDecoherenceProduct([]spins.DecoherenceProduct{spins.NewDecoherenceProduct().IY(0)}, nil, nil)
	require.NoError(t, n.AddPair(l, r, 0.5))
	require.Equal(t, complex128(0.5), n.GetPair(l, r))
	require.Equal(t, complex128(0), n.GetPair(r, l))

	bad := mixed.NewMixedDecoherenceProduct(nil, nil, []fermions.FermionProduct{mustFermion(t, nil, []int{0})})
	require.ErrorIs(t, n.AddPair(l, bad, 1), terms.ErrSlotArityMismatch)
}

func TestMixedOpenSystem_RoundTrip(t *testing.T) {
	sys := mixed.NewMixedOpenSystem(1, 0, 1)
	h := mixed.NewHermitianMixedProduct(
		[]spins.PauliProduct{spins.NewPauliProduct().Z(0)},
		nil,
		[]fermions.FermionProduct{mustFermion(t, []int{0}, []int{0})},
	)
	require.NoError(t, sys.SystemAdd(h, 0.5))

	l := mixed.NewMixedDecoherenceProduct(
		[]spins.DecoherenceProduct{spins.NewDecoherenceProduct().Z(0)},
		nil,
		[]fermions.FermionProduct{mustFermion(t, nil, []int{0})},
	)
	require.NoError(t, sys.NoiseAdd(l, l, 0.2))

	back, err := mixed.ParseMixedOpenSystem(sys.String(), 1, 0, 1)
	require.NoError(t, err)
	require.True(t, sys.Equal(back))
}

func TestGroupMixedOpenSystem_ShapeMismatch(t *testing.T) {
	h := mixed.NewMixedHamiltonian(1, 0, 0)
	n := mixed.NewMixedNoiseOperator(0, 0, 1)
	_, err := mixed.GroupMixedOpenSystem(h, n)
	require.ErrorIs(t, err, terms.ErrSlotArityMismatch)

	ok, err := mixed.GroupMixedOpenSystem(h, mixed.NewMixedNoiseOperator(1, 0, 0))
	require.NoError(t, err)
	require.True(t, ok.System().Equal(h))
}
