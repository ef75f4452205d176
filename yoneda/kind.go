// SPDX-License-Identifier: MIT

package yoneda

// Kind enumerates the five form constructors.
type Kind int

const (
	Simple Kind = iota
	Limit
	Colimit
	Power
	List
)

var kindStrings = [...]string{
	Simple:  "Simple",
	Limit:   "Limit",
	Colimit: "Colimit",
	Power:   "Power",
	List:    "List",
}

// String returns the constructor name, e.g. "Limit".
func (k Kind) String() string {
	if k < Simple || k > List {
		return "Kind(?)"
	}

	return kindStrings[k]
}

// ParseKind is the inverse of Kind.String; the second result is false for
// an unknown name.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindStrings {
		if name == s {
			return Kind(k), true
		}
	}

	return 0, false
}
