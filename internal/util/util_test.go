package util

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KiB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KiB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MiB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GiB"},
		{name: "negative clamps to zero", bytes: -1, expected: "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "zero", amount: "0", expected: "0.00 $"},
		{name: "below thousand", amount: "999", expected: "999.00 $"},
		{name: "thousands grouped", amount: "1234.5", expected: "1 234.50 $"},
		{name: "millions grouped", amount: "1234567.891", expected: "1 234 567.89 $"},
		{name: "negative", amount: "-1500", expected: "-1 500.00 $"},
		{name: "negative rounding to zero", amount: "-0.001", expected: "0.00 $"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPrice(decimal.RequireFromString(tt.amount)); got != tt.expected {
				t.Fatalf("FormatPrice(%s) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestStyleForCurrency(t *testing.T) {
	t.Parallel()

	for _, currency := range entity.SupportedCurrencies() {
		style := StyleForCurrency(currency)
		if style.Label == "" || style.Icon == "" || style.Color == "" {
			t.Fatalf("StyleForCurrency(%s) = %+v, want a complete style", currency, style)
		}
	}

	unknown := StyleForCurrency("DOGE")
	if unknown.Label != "DOGE" || unknown.Icon != "/static/icons/coin.svg" {
		t.Fatalf("StyleForCurrency(DOGE) = %+v, want neutral style labelled DOGE", unknown)
	}
}
