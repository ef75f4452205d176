// SPDX-License-Identifier: MIT

package sets

import "github.com/katalvlaran/denota/yoneda"

// Concat returns the List of a's factors followed by b's.
func Concat(a, b *yoneda.Denotator, opts ...Option) (*yoneda.Denotator, error) {
	ra, rb, err := prepare("Concat", yoneda.List, a, b, gather(opts))
	if err != nil {
		return nil, err
	}
	fs := append(ra.Factors(), rb.Factors()...)

	return rebuild("Concat", ra, fs)
}

// AppendElement returns l with e added at the back.
func AppendElement(l, e *yoneda.Denotator, opts ...Option) (*yoneda.Denotator, error) {
	rl, re, err := prepareElement("AppendElement", l, e, gather(opts), yoneda.List)
	if err != nil {
		return nil, err
	}

	return rebuild("AppendElement", rl, append(rl.Factors(), re))
}

// PrependElement returns l with e added at the front.
func PrependElement(l, e *yoneda.Denotator, opts ...Option) (*yoneda.Denotator, error) {
	rl, re, err := prepareElement("PrependElement", l, e, gather(opts), yoneda.List)
	if err != nil {
		return nil, err
	}

	return rebuild("PrependElement", rl, append([]*yoneda.Denotator{re}, rl.Factors()...))
}
