package util

import "storefront/internal/domain/entity"

// CurrencyStyle is how a wallet currency is drawn in the UI.
type CurrencyStyle struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var currencyStyles = map[entity.Currency]CurrencyStyle{
	entity.CurrencyBTC:       {Label: "Bitcoin", Icon: "/static/icons/btc.svg", Color: "#F7931A"},
	entity.CurrencyETH:       {Label: "Ethereum", Icon: "/static/icons/eth.svg", Color: "#627EEA"},
	entity.CurrencyUSDTTRC20: {Label: "Tether (TRC20)", Icon: "/static/icons/usdt.svg", Color: "#26A17B"},
	entity.CurrencyUSDTERC20: {Label: "Tether (ERC20)", Icon: "/static/icons/usdt.svg", Color: "#26A17B"},
	entity.CurrencyLTC:       {Label: "Litecoin", Icon: "/static/icons/ltc.svg", Color: "#345D9D"},
	entity.CurrencyTON:       {Label: "Toncoin", Icon: "/static/icons/ton.svg", Color: "#0098EA"},
}

var unknownCurrencyStyle = CurrencyStyle{Icon: "/static/icons/coin.svg", Color: "#6B7280"}

// StyleForCurrency returns the label, icon and colour for a currency.
// Unknown codes get a neutral style labelled with the raw code.
func StyleForCurrency(currency entity.Currency) CurrencyStyle {
	if style, ok := currencyStyles[currency]; ok {
		return style
	}
	style := unknownCurrencyStyle
	style.Label = string(currency)

	return style
}
