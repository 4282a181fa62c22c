package spins_test

import (
	"testing"

	"github.com/qusym/qusym/spins"
	"github.com/qusym/qusym/terms"
	"github.com/stretchr/testify/require"
)

func TestPauliOperator_AddAndBound(t *testing.T) {
	op := spins.NewPauliOperator(spins.WithSpins(2))
	require.NoError(t, op.Add(spins.NewPauliProduct().X(0).Z(1), 2+3i))

	err := op.Add(spins.NewPauliProduct().Y(2), 1)
	require.ErrorIs(t, err, terms.ErrIndexOutOfRange)
	require.Equal(t, 1, op.Len())
}

func TestPauliOperator_Mul(t *testing.T) {
	// (2·X0)·(3i·Y0) = 6i·(iZ0) = −6·Z0.
	a := spins.NewPauliOperator()
	require.NoError(t, a.Add(spins.NewPauliProduct().X(0), 2))
	b := spins.NewPauliOperator()
	require.NoError(t, b.Add(spins.NewPauliProduct().Y(0), 3i))

	prod := a.Mul(b)
	require.Equal(t, 1, prod.Len())
	require.Equal(t, complex128(-6), prod.Get(spins.NewPauliProduct().Z(0)))
}

func TestPauliOperator_MulCrossTermsCancel(t *testing.T) {
	// (X0 + Y0)² = 2·I: the XY and YX cross terms cancel exactly.
	a := spins.NewPauliOperator()
	require.NoError(t, a.Add(spins.NewPauliProduct().X(0), 1))
	require.NoError(t, a.Add(spins.NewPauliProduct().Y(0), 1))

	sq := a.Mul(a)
	require.Equal(t, 1, sq.Len())
	require.Equal(t, complex128(2), sq.Get(spins.NewPauliProduct()))
}

func TestPauliOperator_StringParseRoundTrip(t *testing.T) {
	op := spins.NewPauliOperator()
	require.NoError(t, op.Add(spins.NewPauliProduct().X(0).Z(1), 2+3i))
	require.NoError(t, op.Add(spins.NewPauliProduct().Y(2), 1))

	back, err := spins.ParsePauliOperator(op.String())
	require.NoError(t, err)
	require.True(t, op.Equal(back))
}

func TestPauliHamiltonian_RejectsNonRealCoefficient(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	p := spins.NewPauliProduct().Z(0)

	err := h.Add(p, 1i)
	require.ErrorIs(t, err, terms.ErrNonHermitianCoefficient)
	err = h.Set(p, 2+1i)
	require.ErrorIs(t, err, terms.ErrNonHermitianCoefficient)
	require.NoError(t, h.Add(p, 2))
}

func TestPauliHamiltonian_NetCoefficientRule(t *testing.T) {
	// Accumulation is judged on the net coefficient: two imaginary
	// contributions that cancel are accepted.
	h := spins.NewPauliHamiltonian()
	p := spins.NewPauliProduct().X(0)
	require.NoError(t, h.Add(p, 2))
	require.ErrorIs(t, h.Add(p, 1i), terms.ErrNonHermitianCoefficient)
	require.NoError(t, h.Add(p, 3))
	require.Equal(t, complex128(5), h.Get(p))
}

func TestPauliHamiltonian_ToOperatorAndScale(t *testing.T) {
	h := spins.NewPauliHamiltonian(spins.WithSpins(3))
	require.NoError(t, h.Add(spins.NewPauliProduct().Z(0).Z(1), -1))
	require.NoError(t, h.Add(spins.NewPauliProduct().X(2), 0.5))
	h.Scale(2)

	op := h.ToOperator()
	require.Equal(t, 3, op.Bound())
	require.Equal(t, complex128(-2), op.Get(spins.NewPauliProduct().Z(0).Z(1)))
	require.Equal(t, complex128(1), op.Get(spins.NewPauliProduct().X(2)))
}

func TestPauliHamiltonian_ParseRejectsNonReal(t *testing.T) {
	_, err := spins.ParsePauliHamiltonian("(0+1i)*0Z")
	require.ErrorIs(t, err, terms.ErrNonHermitianCoefficient)

	h, err := spins.ParsePauliHamiltonian("(-1+0i)*0Z1Z + (0.5+0i)*2X")
	require.NoError(t, err)
	require.Equal(t, 2, h.Len())
}

func TestLindbladNoiseOperator_Pairs(t *testing.T) {
	n := spins.NewLindbladNoiseOperator()
	l := spins.NewDecoherenceProduct().X(0)
	r := spins.NewDecoherenceProduct().IY(1)

	require.NoError(t, n.AddPair(l, r, 0.5))
	require.NoError(t, n.AddPair(l, r, 0.25))
	require.Equal(t, complex128(0.75), n.GetPair(l, r))
	// Pairs are ordered: the mirrored entry is distinct.
	require.Equal(t, complex128(0), n.GetPair(r, l))

	require.NoError(t, n.SetPair(l, r, 2i))
	require.Equal(t, complex128(2i), n.GetPair(l, r))
}

func TestLindbladNoiseOperator_ParseRoundTrip(t *testing.T) {
	n := spins.NewLindbladNoiseOperator()
	require.NoError(t, n.AddPair(spins.NewDecoherenceProduct().X(0), spins.NewDecoherenceProduct().Z(1), 1))
	require.NoError(t, n.AddPair(spins.NewDecoherenceProduct().IY(0), spins.NewDecoherenceProduct().IY(0), 0.5))

	back, err := spins.ParseLindbladNoiseOperator(n.String())
	require.NoError(t, err)
	require.True(t, n.Equal(back))
}

func TestPlusMinusNoiseOperator_AddOperator(t *testing.T) {
	a := spins.NewPlusMinusNoiseOperator()
	require.NoError(t, a.AddPair(spins.NewPlusMinusProduct().Plus(0), spins.NewPlusMinusProduct().Minus(0), 1))
	b := spins.NewPlusMinusNoiseOperator()
	require.NoError(t, b.AddPair(spins.NewPlusMinusProduct().Plus(0), spins.NewPlusMinusProduct().Minus(0), 2))

	require.NoError(t, a.AddOperator(b))
	require.Equal(t, complex128(3), a.GetPair(spins.NewPlusMinusProduct().Plus(0), spins.NewPlusMinusProduct().Minus(0)))
}

func TestLindbladOpenSystem_RoundTrip(t *testing.T) {
	sys := spins.NewLindbladOpenSystem()
	require.NoError(t, sys.SystemAdd(spins.NewPauliProduct().Z(0).Z(1), -1))
	require.NoError(t, sys.NoiseAdd(spins.NewDecoherenceProduct().X(0), spins.NewDecoherenceProduct().X(0), 0.1))

	text := sys.String()
	back, err := spins.ParseLindbladOpenSystem(text)
	require.NoError(t, err)
	require.True(t, sys.Equal(back))
}

func TestGroupLindbladOpenSystem_ReconcilesBounds(t *testing.T) {
	h := spins.NewPauliHamiltonian(spins.WithSpins(2))
	require.NoError(t, h.Add(spins.NewPauliProduct().Z(0), 1))
	n := spins.NewLindbladNoiseOperator(spins.WithSpins(4))

	sys := spins.GroupLindbladOpenSystem(h, n)
	require.Equal(t, 4, sys.System().Bound())
	require.Equal(t, 4, sys.Noise().Bound())
	// Grouping clones: the original Hamiltonian keeps its bound.
	require.Equal(t, 2, h.Bound())
}
