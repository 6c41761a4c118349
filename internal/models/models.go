package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeIntent is what the alert parser extracts from a raw alert message.
// Action is carried as parsed; side validation happens one layer up so an
// unknown action can be reported distinctly from a malformed alert.
type TradeIntent struct {
	Action   string
	Symbol   string
	Quantity decimal.Decimal
}

// OrderResult is the exchange's confirmation of a submitted order. Nothing
// downstream interprets it beyond reporting it back to the caller.
type OrderResult struct {
	OrderID       int64
	ClientOrderID string
	Symbol        string
	Side          string
	Status        string
	ExecutedQty   decimal.Decimal
	TransactTime  time.Time
}

// OrderEvent is the JSON schema published to the order events topic.
type OrderEvent struct {
	OrderID       int64           `json:"order_id"`
	ClientOrderID string          `json:"client_order_id"`
	Symbol        string          `json:"symbol"`
	Side          string          `json:"side"`
	Quantity      decimal.Decimal `json:"quantity"`
	Status        string          `json:"status"`
	TS            time.Time       `json:"ts"`
}
