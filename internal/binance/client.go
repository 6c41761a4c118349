package binance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adrisev99/automated-trading-bot-binance/internal/domain"
)

const recvWindow = "5000"

// Client is a minimal signed REST client for the Binance spot API. It
// covers only the three calls the bot needs: account info, symbol
// metadata, and market order placement.
type Client struct {
	baseURL   string
	http      *http.Client
	apiKey    string
	apiSecret string
	now       func() time.Time
}

func NewClient(baseURL, apiKey, apiSecret string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}

// sign appends timestamp/recvWindow and the HMAC-SHA256 signature over the
// encoded query string. The signature must cover the exact bytes sent, so
// it is concatenated rather than re-encoded.
func (c *Client) sign(q url.Values) string {
	q.Set("timestamp", strconv.FormatInt(c.now().UnixMilli(), 10))
	q.Set("recvWindow", recvWindow)
	payload := q.Encode()
	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	mac.Write([]byte(payload))
	return payload + "&signature=" + hex.EncodeToString(mac.Sum(nil))
}

func (c *Client) send(ctx context.Context, method, path string, q url.Values, signed bool, v any) error {
	rawQuery := q.Encode()
	if signed {
		rawQuery = c.sign(q)
	}
	u := c.baseURL + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-MBX-APIKEY", c.apiKey)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var apiErr APIError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Msg != "" {
			return &apiErr
		}
		return fmt.Errorf("binance http %d", resp.StatusCode)
	}
	if v != nil {
		return json.NewDecoder(resp.Body).Decode(v)
	}
	return nil
}

// Account fetches spot account info (account type and balances).
func (c *Client) Account(ctx context.Context) (AccountResponse, error) {
	var out AccountResponse
	err := c.send(ctx, http.MethodGet, "/api/v3/account", url.Values{}, true, &out)
	return out, err
}

// SymbolInfo fetches exchange metadata for a single symbol. An unknown
// symbol is an error; lot-size inspection is left to the caller.
func (c *Client) SymbolInfo(ctx context.Context, symbol string) (SymbolInfo, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	var out ExchangeInfoResponse
	if err := c.send(ctx, http.MethodGet, "/api/v3/exchangeInfo", q, false, &out); err != nil {
		return SymbolInfo{}, err
	}
	for _, s := range out.Symbols {
		if s.Symbol == symbol {
			return s, nil
		}
	}
	return SymbolInfo{}, fmt.Errorf("binance: symbol %s not found", symbol)
}

// CreateMarketOrder places a market order. Placing an order is a real
// financial side effect and is not idempotent; clientOrderID only tags the
// order for later reconciliation.
func (c *Client) CreateMarketOrder(ctx context.Context, symbol string, side domain.Side, quantity decimal.Decimal, clientOrderID string) (OrderResponse, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("side", side.String())
	q.Set("type", domain.OrderTypeMarket.String())
	q.Set("quantity", quantity.String())
	if clientOrderID != "" {
		q.Set("newClientOrderId", clientOrderID)
	}
	var out OrderResponse
	err := c.send(ctx, http.MethodPost, "/api/v3/order", q, true, &out)
	return out, err
}
