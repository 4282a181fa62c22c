package bosons

import (
	"fmt"
	"strings"

	"github.com/qusym/qusym/terms"
)

// BosonOperator is a sparse complex-weighted sum of BosonProducts.
type BosonOperator struct {
	terms.Sum[BosonProduct]
}

// NewBosonOperator builds an empty operator. WithModes bounds the mode
// indices the operator will accept.
func NewBosonOperator(opts ...Option) *BosonOperator {
	cfg := gatherOptions(opts)

	return &BosonOperator{Sum: terms.NewSum[BosonProduct](cfg.modes)}
}

// AddOperator accumulates other into o term by term.
func (o *BosonOperator) AddOperator(other *BosonOperator) error {
	return o.AddSum(&other.Sum)
}

// Mul returns the normal-ordered product o·other. Index bounds widen to
// the union of the two operands.
func (o *BosonOperator) Mul(other *BosonOperator) *BosonOperator {
	bound := terms.Unbounded
	if o.Bound() != terms.Unbounded && other.Bound() != terms.Unbounded {
		bound = max(o.Bound(), other.Bound())
	}
	out := &BosonOperator{Sum: terms.NewSum[BosonProduct](bound)}
	for _, lt := range o.Terms() {
		for _, rt := range other.Terms() {
			for _, p := range lt.Key.Mul(rt.Key) {
				_ = out.Add(p, lt.Coefficient*rt.Coefficient)
			}
		}
	}

	return out
}

// Equal reports whether both operators hold the same terms and bound.
func (o *BosonOperator) Equal(other *BosonOperator) bool {
	return o.Sum.Equal(&other.Sum)
}

// Clone returns a deep copy.
func (o *BosonOperator) Clone() *BosonOperator {
	return &BosonOperator{Sum: o.Sum.Clone()}
}

// ParseBosonOperator parses the textual form produced by String.
func ParseBosonOperator(s string, opts ...Option) (*BosonOperator, error) {
	cfg := gatherOptions(opts)
	sum, err := terms.ParseSum(s, cfg.modes, ParseBosonProduct)
	if err != nil {
		return nil, err
	}

	return &BosonOperator{Sum: sum}, nil
}

// BosonHamiltonian is a self-adjoint bosonic operator stored on
// conjugate-pair representatives: an entry (H, v) stands for
// v·H + conj(v)·swap(H). Diagonal (naturally Hermitian) entries must
// carry real coefficients.
type BosonHamiltonian struct {
	terms.Sum[HermitianBosonProduct]
}

// NewBosonHamiltonian builds an empty Hamiltonian.
func NewBosonHamiltonian(opts ...Option) *BosonHamiltonian {
	cfg := gatherOptions(opts)

	return &BosonHamiltonian{Sum: terms.NewSum[HermitianBosonProduct](cfg.modes)}
}

// Add accumulates value onto the representative h. A naturally Hermitian
// representative whose net coefficient would gain an imaginary part
// fails with terms.ErrNonHermitianCoefficient.
func (b *BosonHamiltonian) Add(h HermitianBosonProduct, value complex128) error {
	if h.IsNaturalHermitian() && imag(b.Get(h)+value) != 0 {
		return fmt.Errorf("product %s: %w", h, terms.ErrNonHermitianCoefficient)
	}

	return b.Sum.Add(h, value)
}

// Set overwrites the coefficient of the representative h.
func (b *BosonHamiltonian) Set(h HermitianBosonProduct, value complex128) error {
	if h.IsNaturalHermitian() && imag(value) != 0 {
		return fmt.Errorf("product %s: %w", h, terms.ErrNonHermitianCoefficient)
	}

	return b.Sum.Set(h, value)
}

// AddProduct folds a plain bosonic product into the Hamiltonian,
// conjugating the value when p is not the representative of its orbit.
func (b *BosonHamiltonian) AddProduct(p BosonProduct, value complex128) error {
	h, v := CanonicalHermitianBosonPair(p.creators, p.annihilators, value)

	return b.Add(h, v)
}

// GetProduct returns the coefficient the expanded operator assigns to
// the plain product p, whether p is the stored representative or its
// conjugate.
func (b *BosonHamiltonian) GetProduct(p BosonProduct) complex128 {
	h, _ := CanonicalHermitianBosonPair(p.creators, p.annihilators, 1)
	stored := b.Get(h)
	if p.Equal(h.ToProduct()) {
		return stored
	}

	return complex(real(stored), -imag(stored))
}

// AddHamiltonian accumulates other into b, reconciling bounds by union.
// Both operands hold validated coefficients, so the result does too:
// real values on diagonal representatives stay real under addition.
func (b *BosonHamiltonian) AddHamiltonian(other *BosonHamiltonian) error {
	return b.Sum.AddSum(&other.Sum)
}

// Scale multiplies every coefficient by the real factor.
func (b *BosonHamiltonian) Scale(factor float64) {
	b.Sum.Scale(complex(factor, 0))
}

// ToOperator expands the representative storage into the full
// self-adjoint BosonOperator.
func (b *BosonHamiltonian) ToOperator() *BosonOperator {
	out := &BosonOperator{Sum: terms.NewSum[BosonProduct](b.Bound())}
	for _, t := range b.Terms() {
		_ = out.Add(t.Key.ToProduct(), t.Coefficient)
		if !t.Key.IsNaturalHermitian() {
			v := complex(real(t.Coefficient), -imag(t.Coefficient))
			_ = out.Add(t.Key.ToProduct().HermitianConjugate(), v)
		}
	}

	return out
}

// Equal reports whether both Hamiltonians hold the same terms and bound.
func (b *BosonHamiltonian) Equal(other *BosonHamiltonian) bool {
	return b.Sum.Equal(&other.Sum)
}

// Clone returns a deep copy.
func (b *BosonHamiltonian) Clone() *BosonHamiltonian {
	return &BosonHamiltonian{Sum: b.Sum.Clone()}
}

// ParseBosonHamiltonian parses the textual form produced by String,
// re-validating the Hermiticity constraints term by term.
func ParseBosonHamiltonian(s string, opts ...Option) (*BosonHamiltonian, error) {
	cfg := gatherOptions(opts)
	sum, err := terms.ParseSum(s, cfg.modes, ParseHermitianBosonProduct)
	if err != nil {
		return nil, err
	}
	out := NewBosonHamiltonian(opts...)
	for _, t := range sum.Terms() {
		if err := out.Add(t.Key, t.Coefficient); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// BosonPair is an ordered pair of bosonic products indexing one Lindblad
// dissipator entry.
type BosonPair = terms.Pair[BosonProduct]

// LindbladNoiseOperator stores the rate matrix of a bosonic Lindblad
// dissipator, keyed by (left, right) product pairs.
type LindbladNoiseOperator struct {
	terms.Sum[BosonPair]
}

// NewLindbladNoiseOperator builds an empty noise operator.
func NewLindbladNoiseOperator(opts ...Option) *LindbladNoiseOperator {
	cfg := gatherOptions(opts)

	return &LindbladNoiseOperator{Sum: terms.NewSum[BosonPair](cfg.modes)}
}

// AddPair accumulates value onto the (left, right) entry.
func (n *LindbladNoiseOperator) AddPair(left, right BosonProduct, value complex128) error {
	return n.Add(BosonPair{Left: left, Right: right}, value)
}

// SetPair overwrites the (left, right) entry.
func (n *LindbladNoiseOperator) SetPair(left, right BosonProduct, value complex128) error {
	return n.Set(BosonPair{Left: left, Right: right}, value)
}

// GetPair returns the coefficient of the (left, right) entry.
func (n *LindbladNoiseOperator) GetPair(left, right BosonProduct) complex128 {
	return n.Get(BosonPair{Left: left, Right: right})
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
	parsePair := func(p string) (BosonPair, error) {
		return terms.ParsePair(p, ParseBosonProduct)
	}
	sum, err := terms.ParseSum(s, cfg.modes, parsePair)
	if err != nil {
		return nil, err
	}

	return &LindbladNoiseOperator{Sum: sum}, nil
}

// LindbladOpenSystem pairs a bosonic Hamiltonian with a Lindblad noise
// operator describing one open quantum system.
type LindbladOpenSystem struct {
	system *BosonHamiltonian
	noise  *LindbladNoiseOperator
}

// NewLindbladOpenSystem builds an empty open system.
func NewLindbladOpenSystem(opts ...Option) *LindbladOpenSystem {
	return &LindbladOpenSystem{
		system: NewBosonHamiltonian(opts...),
		noise:  NewLindbladNoiseOperator(opts...),
	}
}

// GroupLindbladOpenSystem combines an existing Hamiltonian and noise
// operator into one open system, cloning both and widening their index
// bounds to the union.
func GroupLindbladOpenSystem(system *BosonHamiltonian, noise *LindbladNoiseOperator) *LindbladOpenSystem {
	sys := system.Clone()
	nz := noise.Clone()
	terms.ReconcileBounds(&sys.Sum, &nz.Sum)

	return &LindbladOpenSystem{system: sys, noise: nz}
}

// System returns the coherent part.
func (l *LindbladOpenSystem) System() *BosonHamiltonian { return l.system }

// Noise returns the dissipative part.
func (l *LindbladOpenSystem) Noise() *LindbladNoiseOperator { return l.noise }

// SystemAdd accumulates value onto a Hamiltonian representative.
func (l *LindbladOpenSystem) SystemAdd(h HermitianBosonProduct, value complex128) error {
	return l.system.Add(h, value)
}

// SystemSet overwrites a Hamiltonian coefficient.
func (l *LindbladOpenSystem) SystemSet(h HermitianBosonProduct, value complex128) error {
	return l.system.Set(h, value)
}

// NoiseAdd accumulates value onto a dissipator entry.
func (l *LindbladOpenSystem) NoiseAdd(left, right BosonProduct, value complex128) error {
	return l.noise.AddPair(left, right, value)
}

// NoiseSet overwrites a dissipator entry.
func (l *LindbladOpenSystem) NoiseSet(left, right BosonProduct, value complex128) error {
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
	system, err := ParseBosonHamiltonian(sysText, opts...)
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
