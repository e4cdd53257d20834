package domain_test

import (
	"testing"

	"github.com/SscSPs/moneyswap/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyCode_Valid(t *testing.T) {
	tests := []struct {
		name string
		code domain.CurrencyCode
		want bool
	}{
		{name: "upper case", code: "USD", want: true},
		{name: "lower case", code: "usd", want: false},
		{name: "too short", code: "US", want: false},
		{name: "too long", code: "USDT", want: false},
		{name: "digits", code: "U5D", want: false},
		{name: "empty", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Valid())
		})
	}
}

func TestNewCurrencyPair_Normalizes(t *testing.T) {
	pair := domain.NewCurrencyPair(" usd", "inr ")

	assert.Equal(t, domain.CurrencyPair{From: "USD", To: "INR"}, pair)
	assert.Equal(t, "USD/INR", pair.String())
}

func TestPreferences_DefaultPair(t *testing.T) {
	assert.Equal(t, domain.CurrencyPair{From: "USD", To: "INR"}, domain.DefaultPreferences("u1").DefaultPair())

	partial := domain.Preferences{UserID: "u1", TargetCurrency: "EUR"}
	assert.Equal(t, domain.CurrencyPair{From: "USD", To: "EUR"}, partial.DefaultPair())
}

func TestCachedRate_ValidFor(t *testing.T) {
	pair := domain.CurrencyPair{From: "USD", To: "INR"}

	assert.True(t, domain.CachedRate{Pair: pair, Rate: 83.1}.ValidFor(pair))
	assert.False(t, domain.CachedRate{Pair: pair, Rate: 0}.ValidFor(pair))
	assert.False(t, domain.CachedRate{Pair: domain.CurrencyPair{From: "USD", To: "EUR"}, Rate: 0.9}.ValidFor(pair))
}

func TestNewHistoryEntry_FromResult(t *testing.T) {
	result := domain.ConversionResult{
		UserID:          "u1",
		Amount:          decimal.NewFromInt(0),
		From:            "USD",
		To:              "INR",
		ConvertedAmount: decimal.Zero,
	}

	entry := domain.NewHistoryEntry("e1", result)

	assert.Equal(t, "e1", entry.EntryID)
	assert.Equal(t, "u1", entry.UserID)
	assert.Equal(t, "0.00", entry.Result)
	assert.True(t, entry.CreatedAt.IsZero())
}
