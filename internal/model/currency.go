package model

// Currency is one of the fixed set of supported currencies.
type Currency string

// Supported currencies. USD is the hub: every exchange rate is expressed as
// units of the foreign currency per 1 USD, and all conversions route through it.
// TWD is additionally used as the secondary display currency.
const (
	USD Currency = "USD"
	TWD Currency = "TWD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
	GBP Currency = "GBP"
	CNY Currency = "CNY"
	AUD Currency = "AUD"
	CAD Currency = "CAD"
	CHF Currency = "CHF"
	HKD Currency = "HKD"
	SGD Currency = "SGD"
)

// Hub is the currency all conversions are defined against.
const Hub = USD

// Currencies lists every supported currency, hub first.
var Currencies = []Currency{USD, TWD, EUR, JPY, GBP, CNY, AUD, CAD, CHF, HKD, SGD}

// ValidCurrency reports whether c is in the supported set.
func ValidCurrency(c Currency) bool {
	for _, cur := range Currencies {
		if cur == c {
			return true
		}
	}
	return false
}

// DisplayCurrency validates a display-currency selection. Only the hub and the
// secondary display currency are accepted; an empty value defaults to the hub.
func DisplayCurrency(c Currency) (Currency, bool) {
	switch c {
	case "":
		return Hub, true
	case USD, TWD:
		return c, true
	}
	return "", false
}
