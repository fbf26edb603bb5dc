package service

import "storefront/internal/domain/entity"

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDepositQR renders a PNG QR code for a platform deposit address
	GenerateDepositQR(address *entity.CryptoAddress) ([]byte, error)

	// ParseDepositQR extracts currency and address from QR payload text
	ParseDepositQR(qrData string) (entity.Currency, string, error)
}
