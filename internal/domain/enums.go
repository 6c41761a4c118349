package domain

import "strings"

// Side is the closed set of order sides the exchange accepts.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

func (s Side) String() string { return string(s) }
func (s Side) Valid() bool {
	switch s {
	case SideBuy, SideSell:
		return true
	default:
		return false
	}
}

// ParseSide maps a raw action token onto a Side. Tokens that parsed out of
// an alert but mean something else (e.g. "HOLD") report ok=false so the
// caller can reject them as an unknown action.
func ParseSide(s string) (Side, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return SideBuy, true
	case "SELL":
		return SideSell, true
	default:
		return "", false
	}
}

// OrderType is the order type sent to the exchange. Only market orders are
// placed here.
type OrderType string

const OrderTypeMarket OrderType = "MARKET"

func (t OrderType) String() string { return string(t) }
