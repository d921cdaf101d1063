package grid

import (
	"path/filepath"
	"sort"
	"strings"
)

// sortNatural orders items by a human-friendly comparison of their path's
// base name, so "img2.png" sorts before "img10.png". The sort is stable:
// items with equal keys keep their input order. Only dynamic-width mode
// calls this; fixed-tile mode preserves input order on purpose.
func sortNatural(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return naturalCompare(filepath.Base(items[i].Path), filepath.Base(items[j].Path)) < 0
	})
}

// naturalCompare compares two strings as alternating runs of digits and
// non-digits. Digit runs compare by numeric value, text runs compare
// case-insensitively, and the overall comparison is lexicographic over the
// run sequence. When one sequence is a prefix of the other, the shorter
// sorts first.
func naturalCompare(a, b string) int {
	for a != "" && b != "" {
		runA, restA, digitsA := nextRun(a)
		runB, restB, digitsB := nextRun(b)

		var c int
		switch {
		case digitsA && digitsB:
			c = compareDigits(runA, runB)
		case digitsA != digitsB:
			// A digit run sorts before a text run at the same position.
			if digitsA {
				c = -1
			} else {
				c = 1
			}
		default:
			c = strings.Compare(strings.ToLower(runA), strings.ToLower(runB))
		}
		if c != 0 {
			return c
		}
		a, b = restA, restB
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// nextRun splits off the leading run of s: a maximal sequence of either
// digits or non-digits.
func nextRun(s string) (run, rest string, digits bool) {
	digits = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:], digits
}

// compareDigits compares two digit runs by numeric value without parsing,
// so arbitrarily long runs cannot overflow. Leading zeros are ignored.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
