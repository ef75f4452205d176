// SPDX-License-Identifier: MIT

package traverse

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/denota/yoneda"
)

var (
	// ErrNilDenotator is returned for a nil root or a nil Map result.
	ErrNilDenotator = errors.New("traverse: denotator is nil")

	// ErrNilFunc is returned when the Apply or Map callback is nil.
	ErrNilFunc = errors.New("traverse: callback is nil")

	// ErrDepthExceeded indicates a tree nested deeper than WithMaxDepth allows.
	ErrDepthExceeded = errors.New("traverse: maximum depth exceeded")
)

// Predicate selects nodes of a walk.
type Predicate func(d *yoneda.Denotator) bool

// FormIs returns a Predicate matching denotators of exactly form f.
func FormIs(f yoneda.Form) Predicate {
	return func(d *yoneda.Denotator) bool {
		return yoneda.FormsEqual(d.Form(), f)
	}
}

// Option configures a walk.
type Option func(*Options)

// Options holds the walk parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, is the deepest nesting level a walk may
	// reach; the root is at depth 0. Default is -1 (no limit).
	MaxDepth int

	// Form, if non-nil, restricts matches to that form.
	Form yoneda.Form

	// Logger receives a debug summary per walk; defaults to a discard logger.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a background context, no depth limit,
// no form restriction and a discard logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		Form:     nil,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to depth limit; a negative limit removes it.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithForm restricts matches to nodes of exactly form f.
func WithForm(f yoneda.Form) Option {
	return func(o *Options) {
		o.Form = f
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
