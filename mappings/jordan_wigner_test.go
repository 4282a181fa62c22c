package mappings_test

import (
	"testing"

	"github.com/qusym/qusym/fermions"
	"github.com/qusym/qusym/mappings"
	"github.com/qusym/qusym/spins"
	"github.com/stretchr/testify/require"
)

func fp(t *testing.T, cr, an []int) fermions.FermionProduct {
	t.Helper()
	p, err := fermions.NewFermionProduct(cr, an)
	require.NoError(t, err)

	return p
}

func TestPauliProductToFermions_Identity(t *testing.T) {
	got := mappings.PauliProductToFermions(spins.NewPauliProduct())
	require.Equal(t, 1, got.Len())
	require.Equal(t, complex128(1), got.Get(fermions.FermionProduct{}))
}

func TestPauliProductToFermions_SingleZ(t *testing.T) {
	// Z_1 maps to 1 − 2·n_1 regardless of the sites below it.
	got := mappings.PauliProductToFermions(spins.NewPauliProduct().Z(1))
	require.Equal(t, 2, got.Len())
	require.Equal(t, complex128(1), got.Get(fermions.FermionProduct{}))
	require.Equal(t, complex128(-2), got.Get(fp(t, []int{1}, []int{1})))
}

func TestPauliProductToFermions_SingleX(t *testing.T) {
	// X_0 has an empty string below it: c_0 + a_0.
	got := mappings.PauliProductToFermions(spins.NewPauliProduct().X(0))
	require.Equal(t, 2, got.Len())
	require.Equal(t, complex128(1), got.Get(fp(t, []int{0}, nil)))
	require.Equal(t, complex128(1), got.Get(fp(t, nil, []int{0})))
}

func TestPauliProductToFermions_ThreeSiteString(t *testing.T) {
	// X0·Y1·Z2 expands into eight ladder terms.
	got := mappings.PauliProductToFermions(spins.NewPauliProduct().X(0).Y(1).Z(2))

	want := []struct {
		creators     []int
		annihilators []int
		coeff        complex128
	}{
		{nil, []int{0, 1}, 1i},
		{[]int{1}, []int{0}, 1i},
		{[]int{0}, []int{1}, -1i},
		{[]int{0, 1}, nil, 1i},
		{[]int{2}, []int{0, 1, 2}, -2i},
		{[]int{1, 2}, []int{0, 2}, 2i},
		{[]int{0, 2}, []int{1, 2}, -2i},
		{[]int{0, 1, 2}, []int{2}, -2i},
	}
	require.Equal(t, len(want), got.Len())
	for _, w := range want {
		require.Equal(t, w.coeff, got.Get(fp(t, w.creators, w.annihilators)), "term c%v a%v", w.creators, w.annihilators)
	}
}

func TestPlusMinusProductToFermions(t *testing.T) {
	// σ+_0 σ−_1 Z_2 lowers on 0 and raises through the string on 1.
	p := spins.NewPlusMinusProduct().Plus(0).Minus(1).Z(2)
	got := mappings.PlusMinusProductToFermions(p)
	require.Equal(t, 2, got.Len())
	require.Equal(t, complex128(1), got.Get(fp(t, []int{1}, []int{0})))
	require.Equal(t, complex128(2), got.Get(fp(t, []int{1, 2}, []int{0, 2})))
}

func TestDecoherenceProductToFermions_MatchesPauli(t *testing.T) {
	// The decoherence alphabet routes through the Pauli expansion: iY
	// carries the corresponding exact factor.
	d := spins.NewDecoherenceProduct().IY(0)
	got := mappings.DecoherenceProductToFermions(d)
	require.Equal(t, complex128(-1), got.Get(fp(t, []int{0}, nil)))
	require.Equal(t, complex128(1), got.Get(fp(t, nil, []int{0})))
}

func TestPauliOperatorToFermions_LinearAndBound(t *testing.T) {
	op := spins.NewPauliOperator(spins.WithSpins(2))
	require.NoError(t, op.Add(spins.NewPauliProduct().Z(0), 2))
	require.NoError(t, op.Add(spins.NewPauliProduct().Z(1), 1i))

	got, err := mappings.PauliOperatorToFermions(op)
	require.NoError(t, err)
	require.Equal(t, 2, got.Bound())
	require.Equal(t, complex128(2+1i), got.Get(fermions.FermionProduct{}))
	require.Equal(t, complex128(-4), got.Get(fp(t, []int{0}, []int{0})))
	require.Equal(t, complex128(-2i), got.Get(fp(t, []int{1}, []int{1})))
}

func TestPauliHamiltonianToFermions(t *testing.T) {
	h := spins.NewPauliHamiltonian()
	require.NoError(t, h.Add(spins.NewPauliProduct().X(0).X(1), 1))

	got, err := mappings.PauliHamiltonianToFermions(h)
	require.NoError(t, err)
	// X0X1 = (c0+a0)(1−2n0)(c1+a1) = (c0−a0)(c1+a1): every term lands on
	// a representative orbit with the conjugate folded in.
	pair, err := fermions.NewFermionProduct(nil, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, complex128(-1), got.GetProduct(pair))
	conjPair, err := fermions.NewFermionProduct([]int{0, 1}, nil)
	require.NoError(t, err)
	require.Equal(t, complex128(1), got.GetProduct(conjPair))
	hop, err := fermions.NewFermionProduct([]int{1}, []int{0})
	require.NoError(t, err)
	require.Equal(t, complex128(1), got.GetProduct(hop))
}

func TestSpinNoiseToFermions_DephasingRate(t *testing.T) {
	// A Z0 dephasing channel with rate 0.25 becomes pure number-operator
	// noise: the identity component drops on both sides and the −2 factors
	// square away the 0.25.
	n := spins.NewLindbladNoiseOperator()
	z := spins.NewDecoherenceProduct().Z(0)
	require.NoError(t, n.AddPair(z, z, 0.25))

	got, err := mappings.SpinNoiseToFermions(n)
	require.NoError(t, err)
	num := fp(t, []int{0}, []int{0})
	require.Equal(t, 1, got.Len())
	require.Equal(t, complex128(1), got.GetPair(num, num))
}

func TestPlusMinusNoiseToFermions_Damping(t *testing.T) {
	// σ+ on site 0 is a bare annihilator; the damping pair carries its
	// rate through unchanged.
	n := spins.NewPlusMinusNoiseOperator()
	p := spins.NewPlusMinusProduct().Plus(0)
	require.NoError(t, n.AddPair(p, p, 0.5))

	got, err := mappings.PlusMinusNoiseToFermions(n)
	require.NoError(t, err)
	an := fp(t, nil, []int{0})
	require.Equal(t, complex128(0.5), got.GetPair(an, an))
}

func TestSpinOpenSystemToFermions(t *testing.T) {
	sys := spins.NewLindbladOpenSystem()
	require.NoError(t, sys.SystemAdd(spins.NewPauliProduct().Z(0), 1))
	require.NoError(t, sys.NoiseAdd(spins.NewDecoherenceProduct().Z(0), spins.NewDecoherenceProduct().Z(0), 0.25))

	got, err := mappings.SpinOpenSystemToFermions(sys)
	require.NoError(t, err)
	require.Equal(t, complex128(-2), got.System().GetProduct(fp(t, []int{0}, []int{0})))
	num := fp(t, []int{0}, []int{0})
	require.Equal(t, complex128(1), got.Noise().GetPair(num, num))
}
