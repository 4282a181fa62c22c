package spins

import "github.com/qusym/qusym/terms"

// DecoherencePair is an ordered (left, right) pair of decoherence
// products keying one Lindblad dissipator term.
type DecoherencePair = terms.Pair[DecoherenceProduct]

// LindbladNoiseOperator is a sparse mapping from ordered pairs of
// decoherence products to complex coefficients, each entry encoding the
// dissipator term coefficient·L_left·ρ·L_right†. Structural
// well-formedness only: positivity of the pair matrix is not enforced.
type LindbladNoiseOperator struct {
	terms.Sum[DecoherencePair]
}

// NewLindbladNoiseOperator returns an empty noise operator; WithSpins
// declares an index bound covering both pair halves.
func NewLindbladNoiseOperator(opts ...Option) *LindbladNoiseOperator {
	return &LindbladNoiseOperator{Sum: terms.NewSum[DecoherencePair](gatherOptions(opts).spins)}
}

// AddPair accumulates c onto the coefficient of the (left, right) pair.
func (n *LindbladNoiseOperator) AddPair(left, right DecoherenceProduct, c complex128) error {
	return n.Add(DecoherencePair{Left: left, Right: right}, c)
}

// SetPair overwrites the coefficient of the (left, right) pair.
func (n *LindbladNoiseOperator) SetPair(left, right DecoherenceProduct, c complex128) error {
	return n.Set(DecoherencePair{Left: left, Right: right}, c)
}

// GetPair returns the coefficient of the (left, right) pair, or zero.
func (n *LindbladNoiseOperator) GetPair(left, right DecoherenceProduct) complex128 {
	return n.Get(DecoherencePair{Left: left, Right: right})
}

// AddOperator accumulates every term of other into n, reconciling bounds
// by union.
func (n *LindbladNoiseOperator) AddOperator(other *LindbladNoiseOperator) error {
	return n.Sum.AddSum(&other.Sum)
}

// Equal reports structural equality of bound and terms.
func (n *LindbladNoiseOperator) Equal(other *LindbladNoiseOperator) bool {
	return n.Sum.Equal(&other.Sum)
}

// Clone returns an independent copy.
func (n *LindbladNoiseOperator) Clone() *LindbladNoiseOperator {
	return &LindbladNoiseOperator{Sum: n.Sum.Clone()}
}

// ParseLindbladNoiseOperator parses the canonical textual form produced
// by String, e.g. "(1+0i)*(0X, 1iY)".
func ParseLindbladNoiseOperator(s string, opts ...Option) (*LindbladNoiseOperator, error) {
	parsePair := func(ps string) (DecoherencePair, error) {
		return terms.ParsePair(ps, ParseDecoherenceProduct)
	}
	sum, err := terms.ParseSum(s, gatherOptions(opts).spins, parsePair)
	if err != nil {
		return nil, err
	}

	return &LindbladNoiseOperator{Sum: sum}, nil
}

// PlusMinusPair is an ordered (left, right) pair of plus/minus products.
type PlusMinusPair = terms.Pair[PlusMinusProduct]

// PlusMinusNoiseOperator is the plus/minus-basis counterpart of
// LindbladNoiseOperator.
type PlusMinusNoiseOperator struct {
	terms.Sum[PlusMinusPair]
}

// NewPlusMinusNoiseOperator returns an empty noise operator; WithSpins
// declares an index bound covering both pair halves.
func NewPlusMinusNoiseOperator(opts ...Option) *PlusMinusNoiseOperator {
	return &PlusMinusNoiseOperator{Sum: terms.NewSum[PlusMinusPair](gatherOptions(opts).spins)}
}

// AddPair accumulates c onto the coefficient of the (left, right) pair.
func (n *PlusMinusNoiseOperator) AddPair(left, right PlusMinusProduct, c complex128) error {
	return n.Add(PlusMinusPair{Left: left, Right: right}, c)
}

// GetPair returns the coefficient of the (left, right) pair, or zero.
func (n *PlusMinusNoiseOperator) GetPair(left, right PlusMinusProduct) complex128 {
	return n.Get(PlusMinusPair{Left: left, Right: right})
}

// AddOperator accumulates every term of other into n, reconciling bounds
// by union.
func (n *PlusMinusNoiseOperator) AddOperator(other *PlusMinusNoiseOperator) error {
	return n.Sum.AddSum(&other.Sum)
}

// Equal reports structural equality of bound and terms.
func (n *PlusMinusNoiseOperator) Equal(other *PlusMinusNoiseOperator) bool {
	return n.Sum.Equal(&other.Sum)
}

// Clone returns an independent copy.
func (n *PlusMinusNoiseOperator) Clone() *PlusMinusNoiseOperator {
	return &PlusMinusNoiseOperator{Sum: n.Sum.Clone()}
}

// ParsePlusMinusNoiseOperator parses the canonical textual form produced
// by String.
func ParsePlusMinusNoiseOperator(s string, opts ...Option) (*PlusMinusNoiseOperator, error) {
	parsePair := func(ps string) (PlusMinusPair, error) {
		return terms.ParsePair(ps, ParsePlusMinusProduct)
	}
	sum, err := terms.ParseSum(s, gatherOptions(opts).spins, parsePair)
	if err != nil {
		return nil, err
	}

	return &PlusMinusNoiseOperator{Sum: sum}, nil
}
