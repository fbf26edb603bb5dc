package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// uriSchemes maps a currency to the wallet URI scheme most wallets understand.
var uriSchemes = map[entity.Currency]string{
	entity.CurrencyBTC:       "bitcoin",
	entity.CurrencyETH:       "ethereum",
	entity.CurrencyUSDTTRC20: "tron",
	entity.CurrencyUSDTERC20: "ethereum",
	entity.CurrencyLTC:       "litecoin",
	entity.CurrencyTON:       "ton",
}

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// Payload builds the text encoded in a deposit QR code, e.g. "bitcoin:bc1q...?currency=BTC".
func Payload(address *entity.CryptoAddress) (string, error) {
	scheme, ok := uriSchemes[address.Currency]
	if !ok {
		return "", fmt.Errorf("unsupported currency: %s", address.Currency)
	}
	if strings.TrimSpace(address.Address) == "" {
		return "", fmt.Errorf("empty address for %s", address.Currency)
	}

	query := url.Values{}
	query.Set("currency", string(address.Currency))

	return scheme + ":" + address.Address + "?" + query.Encode(), nil
}

// GenerateDepositQR generates a PNG QR code for a platform deposit address
func (s *qrcodeService) GenerateDepositQR(address *entity.CryptoAddress) ([]byte, error) {
	payload, err := Payload(address)
	if err != nil {
		return nil, err
	}

	// Generate QR code
	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseDepositQR parses QR code text and returns the currency and address it points at
func (s *qrcodeService) ParseDepositQR(qrData string) (entity.Currency, string, error) {
	scheme, rest, ok := strings.Cut(qrData, ":")
	if !ok || rest == "" {
		return "", "", fmt.Errorf("invalid QR code payload: %q", qrData)
	}

	address, rawQuery, _ := strings.Cut(rest, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse QR code query: %w", err)
	}

	currency := entity.Currency(query.Get("currency"))
	if !currency.IsValid() {
		return "", "", fmt.Errorf("invalid QR code currency: %s", currency)
	}
	if uriSchemes[currency] != scheme {
		return "", "", fmt.Errorf("scheme %s does not match currency %s", scheme, currency)
	}
	if address == "" {
		return "", "", fmt.Errorf("missing address in QR code payload")
	}

	return currency, address, nil
}
