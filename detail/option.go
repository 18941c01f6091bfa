package detail

import (
	"time"

	"github.com/ardnew/builddetails/log"
)

// Option configures how a [Set] renders.
type Option func(options) options

type options struct {
	env    Environment
	clock  func() time.Time
	syntax Syntax
	logger log.Logger
}

func makeOptions(opts ...Option) options {
	o := options{
		env:    OS(),
		clock:  time.Now,
		syntax: Rust(),
	}

	for _, opt := range opts {
		o = opt(o)
	}

	return o
}

// WithEnvironment sets the environment details are read from.
// The default is [OS].
func WithEnvironment(env Environment) Option {
	return func(o options) options {
		if env != nil {
			o.env = env
		}

		return o
	}
}

// WithClock sets the clock the Timestamp detail reads.
// The default is [time.Now].
func WithClock(clock func() time.Time) Option {
	return func(o options) options {
		if clock != nil {
			o.clock = clock
		}

		return o
	}
}

// WithSyntax sets the target syntax. The default is [Rust].
func WithSyntax(s Syntax) Option {
	return func(o options) options {
		if s != nil {
			o.syntax = s
		}

		return o
	}
}

// WithLogger sets the logger receiving a debug record per rendered detail.
// The zero [log.Logger], used by default, discards everything.
func WithLogger(l log.Logger) Option {
	return func(o options) options {
		o.logger = l

		return o
	}
}
