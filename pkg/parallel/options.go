package parallel

import (
	"fmt"
	"runtime"
)

// Option configures a parallel call.
type Option func(*config)

type config struct {
	limit int
}

// WithLimit sets the maximum number of goroutines a call may use.
// Panics with ErrInvalidLimit for n < 1.
func WithLimit(n int) Option {
	return func(c *config) {
		if n < 1 {
			panic(fmt.Errorf("%w: got %d", ErrInvalidLimit, n))
		}
		c.limit = n
	}
}

func newConfig(opts ...Option) *config {
	c := &config{limit: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
