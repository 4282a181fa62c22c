package spins

import "github.com/qusym/qusym/terms"

// PauliOperator is a sparse complex linear combination of PauliProducts.
type PauliOperator struct {
	terms.Sum[PauliProduct]
}

// NewPauliOperator returns an empty operator; WithSpins declares an index
// bound.
func NewPauliOperator(opts ...Option) *PauliOperator {
	return &PauliOperator{Sum: terms.NewSum[PauliProduct](gatherOptions(opts).spins)}
}

// AddOperator accumulates every term of other into o, reconciling bounds
// by union.
func (o *PauliOperator) AddOperator(other *PauliOperator) error {
	return o.Sum.AddSum(&other.Sum)
}

// Equal reports structural equality of bound and terms.
func (o *PauliOperator) Equal(other *PauliOperator) bool {
	return o.Sum.Equal(&other.Sum)
}

// Clone returns an independent copy.
func (o *PauliOperator) Clone() *PauliOperator {
	return &PauliOperator{Sum: o.Sum.Clone()}
}

// Mul multiplies two Pauli operators, expanding products site-wise with
// their exact phases. Bounds are reconciled by union.
func (o *PauliOperator) Mul(other *PauliOperator) *PauliOperator {
	bound := terms.Unbounded
	if o.Bound() != terms.Unbounded && other.Bound() != terms.Unbounded {
		bound = max(o.Bound(), other.Bound())
	}
	out := &PauliOperator{Sum: terms.NewSum[PauliProduct](bound)}
	for _, lt := range o.Terms() {
		for _, rt := range other.Terms() {
			prod, phase := lt.Key.Mul(rt.Key)
			// Bounds already hold for the factors, so they hold for the
			// site-wise product.
			_ = out.Add(prod, lt.Coefficient*rt.Coefficient*phase)
		}
	}

	return out
}

// ParsePauliOperator parses the canonical textual form produced by
// String, e.g. "(2+3i)*0X1Z + (1+0i)*2Y".
func ParsePauliOperator(s string, opts ...Option) (*PauliOperator, error) {
	sum, err := terms.ParseSum(s, gatherOptions(opts).spins, ParsePauliProduct)
	if err != nil {
		return nil, err
	}

	return &PauliOperator{Sum: sum}, nil
}

// DecoherenceOperator is a sparse complex linear combination of
// DecoherenceProducts.
type DecoherenceOperator struct {
	terms.Sum[DecoherenceProduct]
}

// NewDecoherenceOperator returns an empty operator; WithSpins declares an
// index bound.
func NewDecoherenceOperator(opts ...Option) *DecoherenceOperator {
	return &DecoherenceOperator{Sum: terms.NewSum[DecoherenceProduct](gatherOptions(opts).spins)}
}

// AddOperator accumulates every term of other into o, reconciling bounds
// by union.
func (o *DecoherenceOperator) AddOperator(other *DecoherenceOperator) error {
	return o.Sum.AddSum(&other.Sum)
}

// Equal reports structural equality of bound and terms.
func (o *DecoherenceOperator) Equal(other *DecoherenceOperator) bool {
	return o.Sum.Equal(&other.Sum)
}

// Clone returns an independent copy.
func (o *DecoherenceOperator) Clone() *DecoherenceOperator {
	return &DecoherenceOperator{Sum: o.Sum.Clone()}
}

// ParseDecoherenceOperator parses the canonical textual form produced by
// String.
func ParseDecoherenceOperator(s string, opts ...Option) (*DecoherenceOperator, error) {
	sum, err := terms.ParseSum(s, gatherOptions(opts).spins, ParseDecoherenceProduct)
	if err != nil {
		return nil, err
	}

	return &DecoherenceOperator{Sum: sum}, nil
}

// PlusMinusOperator is a sparse complex linear combination of
// PlusMinusProducts.
type PlusMinusOperator struct {
	terms.Sum[PlusMinusProduct]
}

// NewPlusMinusOperator returns an empty operator; WithSpins declares an
// index bound.
func NewPlusMinusOperator(opts ...Option) *PlusMinusOperator {
	return &PlusMinusOperator{Sum: terms.NewSum[PlusMinusProduct](gatherOptions(opts).spins)}
}

// AddOperator accumulates every term of other into o, reconciling bounds
// by union.
func (o *PlusMinusOperator) AddOperator(other *PlusMinusOperator) error {
	return o.Sum.AddSum(&other.Sum)
}

// Equal reports structural equality of bound and terms.
func (o *PlusMinusOperator) Equal(other *PlusMinusOperator) bool {
	return o.Sum.Equal(&other.Sum)
}

// Clone returns an independent copy.
func (o *PlusMinusOperator) Clone() *PlusMinusOperator {
	return &PlusMinusOperator{Sum: o.Sum.Clone()}
}

// ParsePlusMinusOperator parses the canonical textual form produced by
// String.
func ParsePlusMinusOperator(s string, opts ...Option) (*PlusMinusOperator, error) {
	sum, err := terms.ParseSum(s, gatherOptions(opts).spins, ParsePlusMinusProduct)
	if err != nil {
		return nil, err
	}

	return &PlusMinusOperator{Sum: sum}, nil
}
