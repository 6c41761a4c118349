package alert

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adrisev99/automated-trading-bot-binance/internal/models"
)

// ErrIncompleteAlert is returned when the alert text is missing the action,
// the quantity, or the instrument token. No partial intents are produced.
var ErrIncompleteAlert = errors.New("incomplete alert data")

var (
	actionRe   = regexp.MustCompile(`(?i)order\s+(\w+)`)
	quantityRe = regexp.MustCompile(`@\s*(\d+(?:\.\d+)?)`)
	symbolRe   = regexp.MustCompile(`(?i)filled\s+on\s+(\w+)`)
)

// Parser extracts a TradeIntent from free-text alert messages. The parsed
// base-asset token is suffixed with the configured quote asset to form the
// tradable symbol (e.g. XRP + USDT -> XRPUSDT).
type Parser struct {
	quoteAsset string
}

func NewParser(quoteAsset string) *Parser {
	return &Parser{quoteAsset: strings.ToUpper(strings.TrimSpace(quoteAsset))}
}

// Parse pulls (action, symbol, quantity) out of message. The action is any
// word following "order", the quantity is the number following "@", and the
// base asset is the word following "filled on". All three are required.
func (p *Parser) Parse(message string) (models.TradeIntent, error) {
	var intent models.TradeIntent

	m := actionRe.FindStringSubmatch(message)
	if m == nil {
		return models.TradeIntent{}, ErrIncompleteAlert
	}
	intent.Action = strings.ToUpper(m[1])

	m = quantityRe.FindStringSubmatch(message)
	if m == nil {
		return models.TradeIntent{}, ErrIncompleteAlert
	}
	qty, err := decimal.NewFromString(m[1])
	if err != nil {
		return models.TradeIntent{}, ErrIncompleteAlert
	}
	intent.Quantity = qty

	m = symbolRe.FindStringSubmatch(message)
	if m == nil {
		return models.TradeIntent{}, ErrIncompleteAlert
	}
	intent.Symbol = strings.ToUpper(m[1]) + p.quoteAsset

	return intent, nil
}
