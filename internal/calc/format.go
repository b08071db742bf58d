package calc

import (
	"strconv"
	"strings"
)

// num formats a number the way the UI expects: shortest representation,
// no trailing zeros, no exponent for ordinary magnitudes.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func percent(v float64) string {
	return num(v) + "%"
}

// alternates joins a primary value with its draw / sliding variants.
func alternates(values []string) string {
	return strings.Join(values, " | ")
}
