package observable

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type options struct {
	capacity int
	logger   zerolog.Logger
	id       uuid.UUID
}

func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
	}
}

// Option configures a Vector at construction.
type Option func(*options)

// WithCapacity preallocates room for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger sets the logger notification bursts are traced to.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithID fixes the identity stamped on events. A random one is used otherwise.
func WithID(id uuid.UUID) Option {
	return func(o *options) {
		o.id = id
	}
}
