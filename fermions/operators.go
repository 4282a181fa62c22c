package fermions

import (
	"fmt"
	"strings"

	"github.com/qusym/qusym/terms"
)

// FermionOperator is a sparse complex-weighted sum of FermionProducts.
type FermionOperator struct {
	terms.Sum[FermionProduct]
}

// NewFermionOperator builds an empty operator. WithModes bounds the
// orbital indices the operator will accept.
func NewFermionOperator(opts ...Option) *FermionOperator {
	cfg := gatherOptions(opts)

	return &FermionOperator{Sum: terms.NewSum[FermionProduct](cfg.modes)}
}

// AddOperator accumulates other into o term by term.
func (o *FermionOperator) AddOperator(other *FermionOperator) error {
	return o.AddSum(&other.Sum)
}

// Mul returns the normal-ordered product o·other. Index bounds widen to
// the union of the two operands.
func (o *FermionOperator) Mul(other *FermionOperator) *FermionOperator {
	bound := terms.Unbounded
	if o.Bound() != terms.Unbounded && other.Bound() != terms.Unbounded {
		bound = max(o.Bound(), other.Bound())
	}
	out := &FermionOperator{Sum: terms.NewSum[FermionProduct](bound)}
	for _, lt := range o.Terms() {
		for _, rt := range other.Terms() {
			for _, ft := range lt.Key.Mul(rt.Key) {
				_ = out.Add(ft.Product, complex(ft.Sign, 0)*lt.Coefficient*rt.Coefficient)
			}
		}
	}

	return out
}

// Equal reports whether both operators hold the same terms and bound.
func (o *FermionOperator) Equal(other *FermionOperator) bool {
	return o.Sum.Equal(&other.Sum)
}

// Clone returns a deep copy.
func (o *FermionOperator) Clone() *FermionOperator {
	return &FermionOperator{Sum: o.Sum.Clone()}
}

// ParseFermionOperator parses the textual form produced by String.
func ParseFermionOperator(s string, opts ...Option) (*FermionOperator, error) {
	cfg := gatherOptions(opts)
	sum, err := terms.ParseSum(s, cfg.modes, ParseFermionProduct)
	if err != nil {
		return nil, err
	}

	return &FermionOperator{Sum: sum}, nil
}

// FermionHamiltonian is a self-adjoint fermionic operator stored on
// conjugate-pair representatives: an entry (H, v) stands for
// v·H + s·conj(v)·swap(H), where s is H's conjugation sign. Diagonal
// (naturally Hermitian) entries must carry real coefficients.
type FermionHamiltonian struct {
	terms.Sum[HermitianFermionProduct]
}

// NewFermionHamiltonian builds an empty Hamiltonian.
func NewFermionHamiltonian(opts ...Option) *FermionHamiltonian {
	cfg := gatherOptions(opts)

	return &FermionHamiltonian{Sum: terms.NewSum[HermitianFermionProduct](cfg.modes)}
}

// Add accumulates value onto the representative h. A naturally Hermitian
// representative whose net coefficient would gain an imaginary part fails
// with terms.ErrNonHermitianCoefficient.
func (f *FermionHamiltonian) Add(h HermitianFermionProduct, value complex128) error {
	if h.IsNaturalHermitian() && imag(f.Get(h)+value) != 0 {
		return fmt.Errorf("product %s: %w", h, terms.ErrNonHermitianCoefficient)
	}

	return f.Sum.Add(h, value)
}

// Set overwrites the coefficient of the representative h.
func (f *FermionHamiltonian) Set(h HermitianFermionProduct, value complex128) error {
	if h.IsNaturalHermitian() && imag(value) != 0 {
		return fmt.Errorf("product %s: %w", h, terms.ErrNonHermitianCoefficient)
	}

	return f.Sum.Set(h, value)
}

// AddProduct folds a plain fermionic product into the Hamiltonian,
// conjugating the value when p is not the representative of its orbit.
func (f *FermionHamiltonian) AddProduct(p FermionProduct, value complex128) error {
	h, v, err := CanonicalHermitianFermionPair(p.creators, p.annihilators, value)
	if err != nil {
		return err
	}

	return f.Add(h, v)
}

// GetProduct returns the coefficient the expanded operator assigns to the
// plain product p, whether p is the stored representative or its
// conjugate.
func (f *FermionHamiltonian) GetProduct(p FermionProduct) complex128 {
	h, _, err := CanonicalHermitianFermionPair(p.creators, p.annihilators, 1)
	if err != nil {
		return 0
	}
	stored := f.Get(h)
	if p.Equal(h.ToProduct()) {
		return stored
	}

	// p is the conjugate orientation: the expansion assigns it
	// sign·conj(stored).
	sign := h.ConjugateSign()

	return complex(sign, 0) * complex(real(stored), -imag(stored))
}

// AddHamiltonian accumulates other into f, reconciling bounds by union.
// Both operands hold validated coefficients, so the result does too:
// real values on diagonal representatives stay real under addition.
func (f *FermionHamiltonian) AddHamiltonian(other *FermionHamiltonian) error {
	return f.Sum.AddSum(&other.Sum)
}

// Scale multiplies every coefficient by the real factor.
func (f *FermionHamiltonian) Scale(factor float64) {
	f.Sum.Scale(complex(factor, 0))
}

// ToOperator expands the representative storage into the full
// self-adjoint FermionOperator.
func (f *FermionHamiltonian) ToOperator() *FermionOperator {
	out := &FermionOperator{Sum: terms.NewSum[FermionProduct](f.Bound())}
	for _, t := range f.Terms() {
		_ = out.Add(t.Key.ToProduct(), t.Coefficient)
		if !t.Key.IsNaturalHermitian() {
			conj, sign := t.Key.ToProduct().HermitianConjugate()
			v := complex(sign, 0) * complex(real(t.Coefficient), -imag(t.Coefficient))
			_ = out.Add(conj, v)
		}
	}

	return out
}

// Equal reports whether both Hamiltonians hold the same terms and bound.
func (f *FermionHamiltonian) Equal(other *FermionHamiltonian) bool {
	return f.Sum.Equal(&other.Sum)
}

// Clone returns a deep copy.
func (f *FermionHamiltonian) Clone() *FermionHamiltonian {
	return &FermionHamiltonian{Sum: f.Sum.Clone()}
}

// ParseFermionHamiltonian parses the textual form produced by String,
// re-validating the Hermiticity constraints term by term.
func ParseFermionHamiltonian(s string, opts ...Option) (*FermionHamiltonian, error) {
	cfg := gatherOptions(opts)
	sum, err := terms.ParseSum(s, cfg.modes, ParseHermitianFermionProduct)
	if err != nil {
		return nil, err
	}
	out := NewFermionHamiltonian(opts...)
	for _, t := range sum.Terms() {
		if err := out.Add(t.Key, t.Coefficient); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// FermionPair is an ordered pair of fermionic products indexing one
// Lindblad dissipator entry.
type FermionPair = terms.Pair[FermionProduct]

// LindbladNoiseOperator stores the rate matrix of a fermionic Lindblad
// dissipator, keyed by (left, right) product pairs.
type LindbladNoiseOperator struct {
	terms.Sum[FermionPair]
}

// NewLindbladNoiseOperator builds an empty noise operator.
func NewLindbladNoiseOperator(opts ...Option) *LindbladNoiseOperator {
	cfg := gatherOptions(opts)

	return &LindbladNoiseOperator{Sum: terms.NewSum[FermionPair](cfg.modes)}
}

// AddPair accumulates value onto the (left, right) entry.
func (n *LindbladNoiseOperator) AddPair(left, right FermionProduct, value complex128) error {
	return n.Add(FermionPair{Left: left, Right: right}, value)
}

// SetPair overwrites the (left, right) entry.
func (n *LindbladNoiseOperator) SetPair(left, right FermionProduct, value complex128) error {
	return n.Set(FermionPair{Left: left, Right: right}, value)
}

// GetPair returns the coefficient of the (left, right) entry.
func (n *LindbladNoiseOperator) GetPair(left, right FermionProduct) complex128 {
	return n.Get(FermionPair{Left: left, Right: right})
}

// AddOperator accumulates other into n entry by entry.
func (n *LindbladNoiseOperator) AddOperator(other *LindbladNoiseOperator) error {
	return n.AddSum(&other.Sum)
}

// Equal reports whether both noise operators hold the same entries.
func (n *LindbladNoiseOperator) Equal(other *LindbladNoiseOperator) bool {
	return n.Sum.Equal(&other.Sum)
}

// Clone returns a deep copy.
func (n *LindbladNoiseOperator) Clone() *LindbladNoiseOperator {
	return &LindbladNoiseOperator{Sum: n.Sum.Clone()}
}

// ParseLindbladNoiseOperator parses the textual form produced by String.
func ParseLindbladNoiseOperator(s string, opts ...Option) (*LindbladNoiseOperator, error) {
	cfg := gatherOptions(opts)
	parsePair := func(p string) (FermionPair, error) {
		return terms.ParsePair(p, ParseFermionProduct)
	}
	sum, err := terms.ParseSum(s, cfg.modes, parsePair)
	if err != nil {
		return nil, err
	}

	return &LindbladNoiseOperator{Sum: sum}, nil
}

// LindbladOpenSystem pairs a fermionic Hamiltonian with a Lindblad noise
// operator describing one open quantum system.
type LindbladOpenSystem struct {
	system *FermionHamiltonian
	noise  *LindbladNoiseOperator
}

// NewLindbladOpenSystem builds an empty open system.
func NewLindbladOpenSystem(opts ...Option) *LindbladOpenSystem {
	return &LindbladOpenSystem{
		system: NewFermionHamiltonian(opts...),
		noise:  NewLindbladNoiseOperator(opts...),
	}
}

// GroupLindbladOpenSystem combines an existing Hamiltonian and noise
// operator into one open system, cloning both and widening their index
// bounds to the union.
func GroupLindbladOpenSystem(system *FermionHamiltonian, noise *LindbladNoiseOperator) *LindbladOpenSystem {
	sys := system.Clone()
	nz := noise.Clone()
	terms.ReconcileBounds(&sys.Sum, &nz.Sum)

	return &LindbladOpenSystem{system: sys, noise: nz}
}

// System returns the coherent part.
func (l *LindbladOpenSystem) System() *FermionHamiltonian { return l.system }

// Noise returns the dissipative part.
func (l *LindbladOpenSystem) Noise() *LindbladNoiseOperator { return l.noise }

// SystemAdd accumulates value onto a Hamiltonian representative.
func (l *LindbladOpenSystem) SystemAdd(h HermitianFermionProduct, value complex128) error {
	return l.system.Add(h, value)
}

// SystemSet overwrites a Hamiltonian coefficient.
func (l *LindbladOpenSystem) SystemSet(h HermitianFermionProduct, value complex128) error {
	return l.system.Set(h, value)
}

// NoiseAdd accumulates value onto a dissipator entry.
func (l *LindbladOpenSystem) NoiseAdd(left, right FermionProduct, value complex128) error {
	return l.noise.AddPair(left, right, value)
}

// NoiseSet overwrites a dissipator entry.
func (l *LindbladOpenSystem) NoiseSet(left, right FermionProduct, value complex128) error {
	return l.noise.SetPair(left, right, value)
}

// Equal reports whether both open systems agree on system and noise.
func (l *LindbladOpenSystem) Equal(other *LindbladOpenSystem) bool {
	return l.system.Equal(other.system) && l.noise.Equal(other.noise)
}

// Clone returns a deep copy.
func (l *LindbladOpenSystem) Clone() *LindbladOpenSystem {
	return &LindbladOpenSystem{system: l.system.Clone(), noise: l.noise.Clone()}
}

const openSystemSeparator = ") Noise("

// String renders "System(...) Noise(...)".
func (l *LindbladOpenSystem) String() string {
	return "System(" + l.system.String() + openSystemSeparator + l.noise.String() + ")"
}

// ParseLindbladOpenSystem parses the form produced by String.
func ParseLindbladOpenSystem(s string, opts ...Option) (*LindbladOpenSystem, error) {
	body, ok := strings.CutPrefix(s, "System(")
	if !ok {
		return nil, fmt.Errorf("open system %q: missing system part: %w", s, terms.ErrParse)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return nil, fmt.Errorf("open system %q: unterminated noise part: %w", s, terms.ErrParse)
	}
	sysText, noiseText, ok := strings.Cut(body, openSystemSeparator)
	if !ok {
		return nil, fmt.Errorf("open system %q: missing noise part: %w", s, terms.ErrParse)
	}
	system, err := ParseFermionHamiltonian(sysText, opts...)
	if err != nil {
		return nil, err
	}
	noise, err := ParseLindbladNoiseOperator(noiseText, opts...)
	if err != nil {
		return nil, err
	}
	terms.ReconcileBounds(&system.Sum, &noise.Sum)

	return &LindbladOpenSystem{system: system, noise: noise}, nil
}
