// SPDX-License-Identifier: MIT

package sets

import (
	"github.com/katalvlaran/denota/module"
	"github.com/katalvlaran/denota/yoneda"
)

// CommonFunc finds a module both a and b embed into.
type CommonFunc func(a, b module.Module) (module.Module, bool)

// Option configures a set or list operation.
type Option func(*Options)

// Options holds the parameters of an operation.
type Options struct {
	// Common resolves differing addresses; defaults to module.Common.
	Common CommonFunc

	// ResultForm, if non-nil, is the Power or List form of the result of
	// Map and Zip. Defaults to the operand's form.
	ResultForm yoneda.Form
}

// DefaultOptions returns Options resolving addresses with module.Common.
func DefaultOptions() Options {
	return Options{Common: module.Common}
}

// WithCommonModule replaces the common-module lookup. A nil func has no effect.
func WithCommonModule(fn CommonFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Common = fn
		}
	}
}

// WithResultForm sets the form of the collection built by Map or Zip.
func WithResultForm(f yoneda.Form) Option {
	return func(o *Options) {
		o.ResultForm = f
	}
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
