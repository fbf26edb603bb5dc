package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is a crypto asset accepted for top-ups and withdrawals.
type Currency string

const (
	CurrencyBTC       Currency = "BTC"
	CurrencyETH       Currency = "ETH"
	CurrencyUSDTTRC20 Currency = "USDT_TRC20"
	CurrencyUSDTERC20 Currency = "USDT_ERC20"
	CurrencyLTC       Currency = "LTC"
	CurrencyTON       Currency = "TON"
)

// SupportedCurrencies lists every accepted currency in display order.
func SupportedCurrencies() []Currency {
	return []Currency{CurrencyBTC, CurrencyETH, CurrencyUSDTTRC20, CurrencyUSDTERC20, CurrencyLTC, CurrencyTON}
}

// IsValid checks if the Currency is supported.
func (c Currency) IsValid() bool {
	for _, s := range SupportedCurrencies() {
		if s == c {
			return true
		}
	}

	return false
}

// WalletSource says whose balance a withdrawal debits.
type WalletSource string

const (
	WalletSourceUser WalletSource = "USER"
	WalletSourceShop WalletSource = "SHOP"
)

// DepositRequest is a buyer's claim that they sent crypto to a platform address.
type DepositRequest struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"userId"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   Currency        `json:"currency"`
	TxHash     string          `json:"txHash"`
	Status     ReviewStatus    `json:"status"`
	ReviewNote string          `json:"reviewNote,omitempty"`
	ReviewedBy *uuid.UUID      `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time      `json:"reviewedAt,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// WithdrawalRequest asks staff to pay out part of a user or shop balance.
type WithdrawalRequest struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	ShopID        *uuid.UUID      `json:"shopId,omitempty"`
	Source        WalletSource    `json:"source"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency"`
	WalletAddress string          `json:"walletAddress"`
	Status        ReviewStatus    `json:"status"`
	ReviewNote    string          `json:"reviewNote,omitempty"`
	ReviewedBy    *uuid.UUID      `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time      `json:"reviewedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CryptoAddress is the platform receiving address for one currency.
type CryptoAddress struct {
	Currency  Currency   `json:"currency"`
	Address   string     `json:"address"`
	Network   string     `json:"network,omitempty"`
	IsActive  bool       `json:"isActive"`
	UpdatedBy *uuid.UUID `json:"updatedBy,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
