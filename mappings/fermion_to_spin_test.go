package mappings_test

import (
	"testing"

	"github.com/qusym/qusym/fermions"
	"github.com/qusym/qusym/mappings"
	"github.com/qusym/qusym/spins"
	"github.com/stretchr/testify/require"
)

func TestFermionProductToSpins_Creator(t *testing.T) {
	// c_1 dresses in the Z-string below it: Z0·(X1 − iY1)/2.
	got := mappings.FermionProductToSpins(fp(t, []int{1}, nil))
	require.Equal(t, 2, got.Len())
	require.Equal(t, complex128(0.5), got.Get(spins.NewPauliProduct().Z(0).X(1)))
	require.Equal(t, complex128(-0.5i), got.Get(spins.NewPauliProduct().Z(0).Y(1)))
}

func TestFermionProductToSpins_NumberOperator(t *testing.T) {
	// n_0 = c0 a0 = (1 − Z0)/2.
	got := mappings.FermionProductToSpins(fp(t, []int{0}, []int{0}))
	require.Equal(t, 2, got.Len())
	require.Equal(t, complex128(0.5), got.Get(spins.NewPauliProduct()))
	require.Equal(t, complex128(-0.5), got.Get(spins.NewPauliProduct().Z(0)))
}

func TestFermionOperatorToSpins_RoundTripsJordanWigner(t *testing.T) {
	// The inverse transform recovers the original spin operator exactly.
	op := spins.NewPauliOperator()
	require.NoError(t, op.Add(spins.NewPauliProduct().X(0).Z(1), 2+3i))
	require.NoError(t, op.Add(spins.NewPauliProduct().Y(2), 1))
	require.NoError(t, op.Add(spins.NewPauliProduct(), -0.5))

	fermionic, err := mappings.PauliOperatorToFermions(op)
	require.NoError(t, err)
	back, err := mappings.FermionOperatorToSpins(fermionic)
	require.NoError(t, err)
	require.True(t, op.Equal(back))
}

func TestPauliProductToFermions_RoundTripsEachSymbol(t *testing.T) {
	for _, form := range []string{"0X", "1Y", "2Z", "0X1X", "0Y1Z2X"} {
		t.Run(form, func(t *testing.T) {
			p, err := spins.ParsePauliProduct(form)
			require.NoError(t, err)
			op := spins.NewPauliOperator()
			require.NoError(t, op.Add(p, 1))

			fermionic, err := mappings.PauliOperatorToFermions(op)
			require.NoError(t, err)
			back, err := mappings.FermionOperatorToSpins(fermionic)
			require.NoError(t, err)
			require.True(t, op.Equal(back))
		})
	}
}

func TestFermionHamiltonianToSpins(t *testing.T) {
	f := fermions.NewFermionHamiltonian()
	n, err := fermions.NewHermitianFermionProduct([]int{0}, []int{0})
	require.NoError(t, err)
	require.NoError(t, f.Add(n, 2))

	got, err := mappings.FermionHamiltonianToSpins(f)
	require.NoError(t, err)
	require.Equal(t, complex128(1), got.Get(spins.NewPauliProduct()))
	require.Equal(t, complex128(-1), got.Get(spins.NewPauliProduct().Z(0)))
}

func TestFermionNoiseToSpins_NumberDephasing(t *testing.T) {
	// Number-operator noise maps back onto Z dephasing: the identity half
	// of (1 − Z0)/2 drops and the rate scales by 1/4.
	n := fermions.NewLindbladNoiseOperator()
	num := fp(t, []int{0}, []int{0})
	require.NoError(t, n.AddPair(num, num, 1))

	got, err := mappings.FermionNoiseToSpins(n)
	require.NoError(t, err)
	z := spins.NewDecoherenceProduct().Z(0)
	require.Equal(t, 1, got.Len())
	require.Equal(t, complex128(0.25), got.GetPair(z, z))
}

func TestFermionOpenSystemToSpins(t *testing.T) {
	sys := fermions.NewLindbladOpenSystem()
	n, err := fermions.NewHermitianFermionProduct([]int{0}, []int{0})
	require.NoError(t, err)
	require.NoError(t, sys.SystemAdd(n, 2))
	num := fp(t, []int{0}, []int{0})
	require.NoError(t, sys.NoiseAdd(num, num, 1))

	got, err := mappings.FermionOpenSystemToSpins(sys)
	require.NoError(t, err)
	require.Equal(t, complex128(-1), got.System().Get(spins.NewPauliProduct().Z(0)))
	z := spins.NewDecoherenceProduct().Z(0)
	require.Equal(t, complex128(0.25), got.Noise().GetPair(z, z))
}
