package binance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const filterTypeLotSize = "LOT_SIZE"

// ExchangeInfoResponse models /api/v3/exchangeInfo.
type ExchangeInfoResponse struct {
	Symbols []SymbolInfo `json:"symbols"`
}

// SymbolInfo is a single symbol's trading configuration.
type SymbolInfo struct {
	Symbol  string   `json:"symbol"`
	Status  string   `json:"status"`
	Filters []Filter `json:"filters"`
}

// Filter is one trading-rule filter attached to a symbol.
type Filter struct {
	FilterType  string `json:"filterType"`
	TickSize    string `json:"tickSize,omitempty"`    // PRICE_FILTER
	StepSize    string `json:"stepSize,omitempty"`    // LOT_SIZE
	MinQty      string `json:"minQty,omitempty"`      // LOT_SIZE
	MinNotional string `json:"minNotional,omitempty"` // MIN_NOTIONAL
}

// LotStepSize scans the symbol's filters for the LOT_SIZE step. Reports
// ok=false when the filter is missing or carries a non-positive step.
func (s SymbolInfo) LotStepSize() (decimal.Decimal, bool) {
	for _, f := range s.Filters {
		if f.FilterType != filterTypeLotSize {
			continue
		}
		step, err := decimal.NewFromString(f.StepSize)
		if err != nil || !step.IsPositive() {
			return decimal.Decimal{}, false
		}
		return step, true
	}
	return decimal.Decimal{}, false
}

// AccountResponse is the signed /api/v3/account payload, trimmed to what
// the health check reports.
type AccountResponse struct {
	AccountType string    `json:"accountType"`
	Balances    []Balance `json:"balances"`
}

type Balance struct {
	Asset  string `json:"asset"`
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

// OrderResponse is the exchange's confirmation of a placed order.
type OrderResponse struct {
	Symbol        string `json:"symbol"`
	OrderID       int64  `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	TransactTime  int64  `json:"transactTime"`
	ExecutedQty   string `json:"executedQty"`
	Status        string `json:"status"`
	Side          string `json:"side"`
}

// APIError is Binance's error payload for non-2xx responses.
type APIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance: %s (code %d)", e.Msg, e.Code)
}
