// SPDX-License-Identifier: MIT

package project

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/denota/yoneda"
)

// DefaultMaxFileSize is the default input size limit (1 MiB).
const DefaultMaxFileSize = 1 << 20

// Option configures Load.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	reg     *yoneda.Registry // nil: a fresh registry
	maxSize int64
}

func defaultOptions() options {
	return options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxSize: DefaultMaxFileSize,
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegistry loads forms into an existing registry; forms already
// registered there may be referenced by name.
func WithRegistry(r *yoneda.Registry) Option {
	return func(o *options) {
		o.reg = r
	}
}

// WithMaxFileSize sets the input size limit in bytes; n <= 0 keeps the default.
func WithMaxFileSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}
