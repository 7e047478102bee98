package stablearray

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-ltstack/pow2"
)

// DefaultBaseSize is the capacity of the first segment unless configured
// otherwise. Each following segment doubles it.
var DefaultBaseSize = pow2.P64

type Options struct {
	BaseSize pow2.PowOf2[uint64]
	Log      logger.Logger
}

// Option is a generic option type shared by the array and the containers
// built on it. Implementations type assert to their Options target record and
// if that fails they ignore the option
type Option func(any)

func NewOptions(opts ...Option) Options {
	o := Options{BaseSize: DefaultBaseSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBaseSize sets the capacity of the first segment.
func WithBaseSize(base pow2.PowOf2[uint64]) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.BaseSize = base
		}
	}
}

// WithLogger enables debug logging of segment allocation and release.
func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}
