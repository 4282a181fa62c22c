package spins

// Option configures a spin container constructor.
//
// Design goals (matching the library-wide convention):
//   - Deterministic behavior: no global state, no implicit defaults beyond
//     the documented zero values.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error), never on runtime data.
type Option func(*config)

type config struct {
	spins int
}

// WithSpins declares a fixed number of qubits: any insertion touching an
// index at or beyond n fails with terms.ErrIndexOutOfRange. Containers
// built without this option accept any index.
func WithSpins(n int) Option {
	if n <= 0 {
		panic("spins: WithSpins requires n > 0")
	}

	return func(c *config) { c.spins = n }
}

func gatherOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
