package spins_test

import (
	"testing"

	"github.com/qusym/qusym/spins"
	"github.com/qusym/qusym/terms"
	"github.com/stretchr/testify/require"
)

func TestPauliProduct_BuilderCanonicalForm(t *testing.T) {
	p := spins.NewPauliProduct().Z(2).X(0).Y(1)
	require.Equal(t, "0X1Y2Z", p.String())
	require.Equal(t, 3, p.Sites())
	require.False(t, p.IsIdentity())
}

func TestPauliProduct_LastWriteWins(t *testing.T) {
	p := spins.NewPauliProduct().X(0).Y(0)
	require.Equal(t, "0Y", p.String())

	// Writing the identity erases the site.
	p = p.SetPauli(0, spins.PauliI)
	require.True(t, p.IsIdentity())
	require.Equal(t, "I", p.String())
	require.Equal(t, 0, p.Sites())
}

func TestPauliProduct_Get(t *testing.T) {
	p := spins.NewPauliProduct().X(0).Z(5)
	require.Equal(t, spins.PauliX, p.Get(0))
	require.Equal(t, spins.PauliZ, p.Get(5))
	require.Equal(t, spins.PauliI, p.Get(3))
}

func TestPauliProduct_ParseRoundTrip(t *testing.T) {
	for _, form := range []string{"I", "0X", "0X1Y2Z", "3Z17X"} {
		t.Run(form, func(t *testing.T) {
			p, err := spins.ParsePauliProduct(form)
			require.NoError(t, err)
			require.Equal(t, form, p.String())
		})
	}

	// Unsorted input re-canonicalizes.
	p, err := spins.ParsePauliProduct("2Z0X")
	require.NoError(t, err)
	require.Equal(t, "0X2Z", p.String())
}

func TestPauliProduct_ParseErrors(t *testing.T) {
	for _, form := range []string{"X0", "0Q", "0"} {
		t.Run(form, func(t *testing.T) {
			_, err := spins.ParsePauliProduct(form)
			require.ErrorIs(t, err, terms.ErrParse)
		})
	}
}

func TestMulPauli(t *testing.T) {
	cases := []struct {
		name  string
		l, r  spins.Pauli
		want  spins.Pauli
		phase complex128
	}{
		{"IdentityLeft", spins.PauliI, spins.PauliY, spins.PauliY, 1},
		{"IdentityRight", spins.PauliZ, spins.PauliI, spins.PauliZ, 1},
		{"Square", spins.PauliX, spins.PauliX, spins.PauliI, 1},
		{"XY", spins.PauliX, spins.PauliY, spins.PauliZ, 1i},
		{"YX", spins.PauliY, spins.PauliX, spins.PauliZ, -1i},
		{"YZ", spins.PauliY, spins.PauliZ, spins.PauliX, 1i},
		{"ZY", spins.PauliZ, spins.PauliY, spins.PauliX, -1i},
		{"ZX", spins.PauliZ, spins.PauliX, spins.PauliY, 1i},
		{"XZ", spins.PauliX, spins.PauliZ, spins.PauliY, -1i},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, phase := spins.MulPauli(tc.l, tc.r)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.phase, phase)
		})
	}
}

func TestPauliProduct_Mul(t *testing.T) {
	// (X0 Z2)·(Y0 Z1) = iZ0 Z1 Z2.
	l := spins.NewPauliProduct().X(0).Z(2)
	r := spins.NewPauliProduct().Y(0).Z(1)
	prod, phase := l.Mul(r)
	require.Equal(t, "0Z1Z2Z", prod.String())
	require.Equal(t, complex128(1i), phase)

	// A product times itself is the identity with phase 1.
	sq, phase := l.Mul(l)
	require.True(t, sq.IsIdentity())
	require.Equal(t, complex128(1), phase)
}

func TestPauliProduct_ToDecoherence(t *testing.T) {
	p := spins.NewPauliProduct().X(0).Y(1).Y(2)
	d, factor := p.ToDecoherence()
	require.Equal(t, "0X1iY2iY", d.String())
	require.Equal(t, complex128(-1), factor)

	// And back: ToPauli undoes the change of alphabet.
	back, inv := d.ToPauli()
	require.True(t, back.Equal(p))
	require.Equal(t, complex128(1), factor*inv)
}

func TestDecoherenceProduct_HermitianConjugate(t *testing.T) {
	d := spins.NewDecoherenceProduct().X(0).IY(1)
	conj, sign := d.HermitianConjugate()
	require.True(t, conj.Equal(d))
	require.Equal(t, -1.0, sign)

	even := spins.NewDecoherenceProduct().IY(0).IY(1)
	_, sign = even.HermitianConjugate()
	require.Equal(t, 1.0, sign)
}

func TestPlusMinusProduct_HermitianConjugate(t *testing.T) {
	p := spins.NewPlusMinusProduct().Plus(0).Minus(1).Z(2)
	conj, sign := p.HermitianConjugate()
	require.Equal(t, "0-1+2Z", conj.String())
	require.Equal(t, 1.0, sign)
}

func TestPlusMinusProduct_ParseRoundTrip(t *testing.T) {
	p, err := spins.ParsePlusMinusProduct("0+1-2Z")
	require.NoError(t, err)
	require.Equal(t, "0+1-2Z", p.String())
	require.Equal(t, spins.PMMinus, p.Get(1))
}
