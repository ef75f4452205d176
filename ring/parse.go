// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads the text form produced by RingString.String:
//
//	coef*"word" [ + coef*"word" ]...   or   0
//
// Repeated words accumulate; terms summing to zero are dropped.
// Returns ErrFormat for malformed input.
func Parse[T any](r Ring[T], text string) (*RingString[T], error) {
	s := New(r)
	rest := strings.TrimSpace(text)
	if rest == "0" || rest == "" {
		return s, nil
	}
	for {
		star := strings.Index(rest, `*"`)
		if star < 0 {
			return nil, fmt.Errorf("Parse(%q): missing *\"word\": %w", text, ErrFormat)
		}
		c, err := r.Parse(strings.TrimSpace(rest[:star]))
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): coefficient: %w", text, err)
		}
		quoted, err := strconv.QuotedPrefix(rest[star+1:])
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): word: %w", text, ErrFormat)
		}
		word, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): word: %w", text, ErrFormat)
		}
		s.Add(word, c)

		rest = strings.TrimSpace(rest[star+1+len(quoted):])
		if rest == "" {
			return s, nil
		}
		if rest[0] != '+' {
			return nil, fmt.Errorf("Parse(%q): expected '+' at %q: %w", text, rest, ErrFormat)
		}
		rest = strings.TrimSpace(rest[1:])
	}
}
