// Package digits provides decimal digit arithmetic used by the numerology path
// and by cell colouring: digit reduction, digit sums of text, and the set of
// digits present in a birth date.
package digits

// Reduce sums the decimal digits of n until a single digit remains.
// Values below 10 are returned unchanged. Negative input is reduced by
// absolute value.
func Reduce(n int) int {
	if n < 0 {
		n = -n
	}
	for n >= 10 {
		sum := 0
		for ; n > 0; n /= 10 {
			sum += n % 10
		}
		n = sum
	}
	return n
}

// SumString returns the sum of every ASCII digit in s. Other characters are ignored.
func SumString(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			sum += int(c - '0')
		}
	}
	return sum
}

// Set is a set of decimal digits 0-9.
type Set uint16

// SignDigits returns the distinct digits occurring in raw.
// Non-digit characters (separators, trailing dots) are discarded.
func SignDigits(raw string) Set {
	var set Set
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			set = set.Add(int(c - '0'))
		}
	}
	return set
}

// Of builds a set from the given digits. Values outside 0-9 are ignored.
func Of(ds ...int) Set {
	var set Set
	for _, d := range ds {
		set = set.Add(d)
	}
	return set
}

// Add returns the set with d included.
func (s Set) Add(d int) Set {
	if d < 0 || d > 9 {
		return s
	}
	return s | 1<<uint(d)
}

// Contains reports whether d is in the set.
func (s Set) Contains(d int) bool {
	if d < 0 || d > 9 {
		return false
	}
	return s&(1<<uint(d)) != 0
}

// Len returns the number of digits in the set.
func (s Set) Len() int {
	n := 0
	for d := 0; d <= 9; d++ {
		if s.Contains(d) {
			n++
		}
	}
	return n
}

// Slice returns the digits in ascending order.
func (s Set) Slice() []int {
	out := make([]int, 0, s.Len())
	for d := 0; d <= 9; d++ {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}
