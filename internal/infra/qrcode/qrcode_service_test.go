package qrcode

import (
	"bytes"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateDepositQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateDepositQR(&entity.CryptoAddress{
		Currency: entity.CurrencyBTC,
		Address:  "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(qrBytes, pngMagic))
}

func TestQRCodeService_GenerateDepositQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateDepositQR(&entity.CryptoAddress{Currency: "DOGE", Address: "D123"})
	assert.Error(t, err)

	_, err = service.GenerateDepositQR(&entity.CryptoAddress{Currency: entity.CurrencyETH, Address: "  "})
	assert.Error(t, err)
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")

	for _, currency := range entity.SupportedCurrencies() {
		t.Run(string(currency), func(t *testing.T) {
			payload, err := Payload(&entity.CryptoAddress{Currency: currency, Address: "addr-" + string(currency)})
			require.NoError(t, err)

			gotCurrency, gotAddress, err := service.ParseDepositQR(payload)
			require.NoError(t, err)
			assert.Equal(t, currency, gotCurrency)
			assert.Equal(t, "addr-"+string(currency), gotAddress)
		})
	}
}

func TestQRCodeService_ParseDepositQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"no scheme", "bc1qaddress"},
		{"unknown currency", "bitcoin:bc1q?currency=DOGE"},
		{"scheme mismatch", "tron:T123?currency=BTC"},
		{"missing address", "bitcoin:?currency=BTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.ParseDepositQR(tt.data)
			assert.Error(t, err)
		})
	}
}
