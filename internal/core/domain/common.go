package domain

import "strings"

// CurrencyCode is an ISO-4217-like currency code (e.g. "USD").
type CurrencyCode string

// NormalizeCurrency trims and upper-cases a raw code.
func NormalizeCurrency(code string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(code)))
}

func (c CurrencyCode) String() string {
	return string(c)
}

// IsZero reports whether the code is empty.
func (c CurrencyCode) IsZero() bool {
	return c == ""
}

// CurrencyPair identifies a base/target selection.
type CurrencyPair struct {
	From CurrencyCode `json:"from"`
	To   CurrencyCode `json:"to"`
}

// NewCurrencyPair builds a normalized pair.
func NewCurrencyPair(from, to string) CurrencyPair {
	return CurrencyPair{From: NormalizeCurrency(from), To: NormalizeCurrency(to)}
}

func (p CurrencyPair) String() string {
	return string(p.From) + "/" + string(p.To)
}

// Valid reports whether the code is three upper-case ASCII letters.
func (c CurrencyCode) Valid() bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}
