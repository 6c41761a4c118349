package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adrisev99/automated-trading-bot-binance/internal/binance"
	"github.com/adrisev99/automated-trading-bot-binance/internal/domain"
	"github.com/adrisev99/automated-trading-bot-binance/internal/models"
)

// ErrStepSizeNotFound means the symbol has no usable LOT_SIZE filter; the
// order is aborted before the exchange is called.
var ErrStepSizeNotFound = errors.New("step size not found")

// Exchange is the slice of the trading API the submitter needs, so tests
// can substitute a fake without network access.
type Exchange interface {
	SymbolInfo(ctx context.Context, symbol string) (binance.SymbolInfo, error)
	CreateMarketOrder(ctx context.Context, symbol string, side domain.Side, quantity decimal.Decimal, clientOrderID string) (binance.OrderResponse, error)
	Account(ctx context.Context) (binance.AccountResponse, error)
}

// Publisher receives a record of every successfully submitted order.
type Publisher interface {
	Publish(ctx context.Context, ev models.OrderEvent) error
}

// Service turns a validated trade intent into a market order: it resolves
// the symbol's lot step, floors the quantity to it, and submits. One call,
// no retries; any failure is terminal for the invocation.
type Service struct {
	Exchange  Exchange
	Publisher Publisher // optional
	Logger    *zap.Logger
}

func New(ex Exchange, pub Publisher, logger *zap.Logger) *Service {
	return &Service{Exchange: ex, Publisher: pub, Logger: logger}
}

// Submit places a market order for qty of symbol. The step size is looked
// up fresh on every call so the order always follows the exchange's
// current constraints.
func (s *Service) Submit(ctx context.Context, symbol string, side domain.Side, qty decimal.Decimal) (models.OrderResult, error) {
	step, err := s.resolveStepSize(ctx, symbol)
	if err != nil {
		s.Logger.Error("step size lookup failed", zap.String("symbol", symbol), zap.Error(err))
		return models.OrderResult{}, err
	}

	adjusted := QuantizeToStep(qty, step)
	if !adjusted.Equal(qty) {
		s.Logger.Info("quantity adjusted to lot step",
			zap.String("symbol", symbol),
			zap.String("requested", qty.String()),
			zap.String("adjusted", adjusted.String()),
			zap.String("step", step.String()),
		)
	}

	resp, err := s.Exchange.CreateMarketOrder(ctx, symbol, side, adjusted, uuid.NewString())
	if err != nil {
		s.Logger.Error("order placement failed", zap.String("symbol", symbol), zap.Error(err))
		return models.OrderResult{}, fmt.Errorf("place order: %w", err)
	}

	executed, _ := decimal.NewFromString(resp.ExecutedQty)
	res := models.OrderResult{
		OrderID:       resp.OrderID,
		ClientOrderID: resp.ClientOrderID,
		Symbol:        resp.Symbol,
		Side:          side.String(),
		Status:        resp.Status,
		ExecutedQty:   executed,
		TransactTime:  time.UnixMilli(resp.TransactTime).UTC(),
	}
	s.Logger.Info("order placed",
		zap.Int64("order_id", res.OrderID),
		zap.String("symbol", res.Symbol),
		zap.String("side", res.Side),
		zap.String("quantity", adjusted.String()),
		zap.String("status", res.Status),
	)

	s.publish(ctx, res, adjusted)
	return res, nil
}

func (s *Service) resolveStepSize(ctx context.Context, symbol string) (decimal.Decimal, error) {
	info, err := s.Exchange.SymbolInfo(ctx, symbol)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("symbol info: %w", err)
	}
	step, ok := info.LotStepSize()
	if !ok {
		return decimal.Decimal{}, ErrStepSizeNotFound
	}
	return step, nil
}

// publish is fire-and-forget: a broker hiccup must not fail an order that
// the exchange already accepted.
func (s *Service) publish(ctx context.Context, res models.OrderResult, qty decimal.Decimal) {
	if s.Publisher == nil {
		return
	}
	ev := models.OrderEvent{
		OrderID:       res.OrderID,
		ClientOrderID: res.ClientOrderID,
		Symbol:        res.Symbol,
		Side:          res.Side,
		Quantity:      qty,
		Status:        res.Status,
		TS:            res.TransactTime,
	}
	if err := s.Publisher.Publish(ctx, ev); err != nil {
		s.Logger.Warn("order event publish failed", zap.Int64("order_id", res.OrderID), zap.Error(err))
	}
}
