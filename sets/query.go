// SPDX-License-Identifier: MIT

package sets

import (
	"sort"

	"github.com/katalvlaran/denota/yoneda"
)

// IndexOf returns the position of the first factor of d equal to e, or -1.
// Power denotators are searched by binary search, Lists by a scan.
func IndexOf(d, e *yoneda.Denotator) int {
	if d == nil || e == nil {
		return -1
	}
	fs := d.Factors()
	switch d.Kind() {
	case yoneda.Power:
		i := sort.Search(len(fs), func(k int) bool { return yoneda.Compare(fs[k], e) >= 0 })
		if i < len(fs) && yoneda.Equal(fs[i], e) {
			return i
		}
	case yoneda.List:
		for i, f := range fs {
			if yoneda.Equal(f, e) {
				return i
			}
		}
	}

	return -1
}

// Contains reports whether e is an element of the Power or List d. Equality
// includes the address; Reconcile first when addresses may differ.
func Contains(d, e *yoneda.Denotator) bool { return IndexOf(d, e) >= 0 }

// Subset reports whether every element of a is an element of b. Both must
// be Powers of one form.
func Subset(a, b *yoneda.Denotator, opts ...Option) (bool, error) {
	ra, rb, err := prepare("Subset", yoneda.Power, a, b, gather(opts))
	if err != nil {
		return false, err
	}
	fa, fb := ra.Factors(), rb.Factors()
	if len(fa) > len(fb) {
		return false, nil
	}
	j := 0
	for _, x := range fa {
		for j < len(fb) && yoneda.Compare(fb[j], x) < 0 {
			j++
		}
		if j == len(fb) || !yoneda.Equal(fb[j], x) {
			return false, nil
		}
		j++
	}

	return true, nil
}
