package fermions_test

import (
	"sort"
	"strconv"
	"testing"

	"github.com/qusym/qusym/fermions"
	"github.com/qusym/qusym/terms"
	"github.com/stretchr/testify/require"
)

func TestNewFermionProduct_SortsAndRejectsDuplicates(t *testing.T) {
	p, err := fermions.NewFermionProduct([]int{2, 0}, []int{1})
	require.NoError(t, err)
	require.Equal(t, "c0c2a1", p.String())

	_, err = fermions.NewFermionProduct([]int{0, 0}, nil)
	require.ErrorIs(t, err, terms.ErrDuplicateIndex)
	_, err = fermions.NewFermionProduct(nil, []int{3, 1, 3})
	require.ErrorIs(t, err, terms.ErrDuplicateIndex)
}

func TestCanonicalFermionPair_FoldsReorderingSign(t *testing.T) {
	// One swap in the creator list negates the value.
	p, v, err := fermions.CanonicalFermionPair([]int{1, 0}, nil, 2)
	require.NoError(t, err)
	require.Equal(t, "c0c1", p.String())
	require.Equal(t, complex128(-2), v)

	// One swap in each list: the signs cancel.
	p, v, err = fermions.CanonicalFermionPair([]int{1, 0}, []int{2, 0}, 1+1i)
	require.NoError(t, err)
	require.Equal(t, "c0c1a0a2", p.String())
	require.Equal(t, complex128(1+1i), v)
}

func TestFermionProduct_HermitianConjugate(t *testing.T) {
	// (c0 c1)† = a1 a0 = −a0 a1.
	p, err := fermions.NewFermionProduct([]int{0, 1}, nil)
	require.NoError(t, err)
	conj, sign := p.HermitianConjugate()
	require.Equal(t, "a0a1", conj.String())
	require.Equal(t, -1.0, sign)

	// A number operator is its own adjoint.
	n, err := fermions.NewFermionProduct([]int{0}, []int{0})
	require.NoError(t, err)
	conj, sign = n.HermitianConjugate()
	require.True(t, conj.Equal(n))
	require.Equal(t, 1.0, sign)
	require.True(t, n.IsNaturalHermitian())
}

// mulResult flattens a product expansion into "form:sign" strings sorted
// for comparison.
func mulResult(ts []fermions.FermionTerm) []string {
	out := make([]string, 0, len(ts))
	for _, ft := range ts {
		out = append(out, ft.Product.String()+":"+strconv.FormatFloat(ft.Sign, 'g', -1, 64))
	}
	sort.Strings(out)

	return out
}

func TestFermionProduct_Mul(t *testing.T) {
	mk := func(cr, an []int) fermions.FermionProduct {
		p, err := fermions.NewFermionProduct(cr, an)
		if err != nil {
			panic(err)
		}

		return p
	}

	cases := []struct {
		name string
		l, r fermions.FermionProduct
		want []string
	}{
		{
			// a0·c0 = 1 − c0 a0.
			name: "SingleContraction",
			l:    mk(nil, []int{0}),
			r:    mk([]int{0}, nil),
			want: []string{"I:1", "c0a0:-1"},
		},
		{
			// No shared index: three creators move past three annihilators.
			name: "DisjointOddParity",
			l:    mk(nil, []int{0, 2, 4}),
			r:    mk([]int{1, 3, 5}, nil),
			want: []string{"c1c3c5a0a2a4:-1"},
		},
		{
			// c0a1·c1a0 = c0a0 + c0c1a0a1.
			name: "HoppingPair",
			l:    mk([]int{0}, []int{1}),
			r:    mk([]int{1}, []int{0}),
			want: []string{"c0a0:1", "c0c1a0a1:1"},
		},
		{
			// A number operator is idempotent: the uncontracted branch
			// vanishes on the repeated index.
			name: "NumberIdempotent",
			l:    mk([]int{0}, []int{0}),
			r:    mk([]int{0}, []int{0}),
			want: []string{"c0a0:1"},
		},
		{
			// a1a20·c1c30: contract on 1, carry 20 and 30 through.
			name: "PartialOverlap",
			l:    mk(nil, []int{1, 20}),
			r:    mk([]int{1, 30}, nil),
			want: []string{"c1c30a1a20:1", "c30a20:1"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, mulResult(tc.l.Mul(tc.r)))
		})
	}
}

func TestFermionProduct_Sites(t *testing.T) {
	p, err := fermions.NewFermionProduct([]int{0, 4}, []int{2})
	require.NoError(t, err)
	require.Equal(t, 5, p.Sites())
	require.Equal(t, 0, fermions.FermionProduct{}.Sites())
}

func TestParseFermionProduct(t *testing.T) {
	p, err := fermions.ParseFermionProduct("c0c1a0a2")
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, p.Creators())
	require.Equal(t, []int{0, 2}, p.Annihilators())

	identity, err := fermions.ParseFermionProduct("I")
	require.NoError(t, err)
	require.True(t, identity.IsIdentity())

	_, err = fermions.ParseFermionProduct("c0c0")
	require.ErrorIs(t, err, terms.ErrDuplicateIndex)
	_, err = fermions.ParseFermionProduct("a0c1")
	require.ErrorIs(t, err, terms.ErrParse)
}
