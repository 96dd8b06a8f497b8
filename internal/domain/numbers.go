package domain

import "math/big"

// AddDecimal adds two non-negative decimal strings and returns the sum
// as a decimal string. Unparseable inputs are treated as zero so a
// corrupt stored counter never poisons subsequent accumulation.
func AddDecimal(a, b string) string {
	return new(big.Int).Add(parseDecimal(a), parseDecimal(b)).String()
}

// IncrementDecimal adds one to a decimal string counter.
func IncrementDecimal(a string) string {
	return AddDecimal(a, "1")
}

func parseDecimal(s string) *big.Int {
	if s == "" {
		return new(big.Int)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return new(big.Int)
	}
	return n
}
