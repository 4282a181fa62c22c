package fermions

// Option configures a fermionic container constructor.
type Option func(*config)

type config struct {
	modes int
}

// WithModes declares a fixed number of orbitals: any insertion touching
// an index at or beyond n fails with terms.ErrIndexOutOfRange.
// Containers built without this option accept any index.
func WithModes(n int) Option {
	if n <= 0 {
		panic("fermions: WithModes requires n > 0")
	}

	return func(c *config) { c.modes = n }
}

func gatherOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
