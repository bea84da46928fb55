package gematria

// DigitalRoot repeatedly sums the decimal digits of n until a single
// digit remains. Positive multiples of nine reduce to 9, never 0; the
// root of a non-positive input is 0.
func DigitalRoot(n int) int {
	if n <= 0 {
		return 0
	}
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}
