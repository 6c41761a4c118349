package binance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(srv.URL, "test-key", "test-secret", 5*time.Second)
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return c, srv
}

func TestSymbolInfo(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/exchangeInfo", r.URL.Path)
		assert.Equal(t, "XRPUSDT", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.Header.Get("X-MBX-APIKEY"))
		w.Write([]byte(`{"symbols":[{"symbol":"XRPUSDT","status":"TRADING","filters":[
			{"filterType":"PRICE_FILTER","tickSize":"0.0001"},
			{"filterType":"LOT_SIZE","stepSize":"0.10000000","minQty":"0.10000000"}
		]}]}`))
	})
	defer srv.Close()

	info, err := c.SymbolInfo(context.Background(), "XRPUSDT")
	require.NoError(t, err)
	assert.Equal(t, "XRPUSDT", info.Symbol)

	step, ok := info.LotStepSize()
	require.True(t, ok)
	assert.True(t, step.Equal(decimal.RequireFromString("0.1")), "step = %s", step)
}

func TestSymbolInfoUnknownSymbol(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbols":[]}`))
	})
	defer srv.Close()

	_, err := c.SymbolInfo(context.Background(), "NOPEUSDT")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOPEUSDT")
}

func TestAccountSignsRequest(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/account", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "1700000000000", q.Get("timestamp"))
		assert.Equal(t, recvWindow, q.Get("recvWindow"))
		assert.NotEmpty(t, q.Get("signature"))
		w.Write([]byte(`{"accountType":"SPOT","balances":[{"asset":"USDT","free":"10.5","locked":"0"}]}`))
	})
	defer srv.Close()

	acct, err := c.Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SPOT", acct.AccountType)
	require.Len(t, acct.Balances, 1)
	assert.Equal(t, "USDT", acct.Balances[0].Asset)
}

func TestCreateMarketOrder(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v3/order", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "ETHUSDT", q.Get("symbol"))
		assert.Equal(t, "SELL", q.Get("side"))
		assert.Equal(t, "MARKET", q.Get("type"))
		assert.Equal(t, "0.5", q.Get("quantity"))
		assert.Equal(t, "cid-1", q.Get("newClientOrderId"))
		assert.NotEmpty(t, q.Get("signature"))
		w.Write([]byte(`{"symbol":"ETHUSDT","orderId":123,"clientOrderId":"cid-1","transactTime":1700000000123,"executedQty":"0.5","status":"FILLED","side":"SELL"}`))
	})
	defer srv.Close()

	resp, err := c.CreateMarketOrder(context.Background(), "ETHUSDT", "SELL", decimal.RequireFromString("0.5"), "cid-1")
	require.NoError(t, err)
	assert.Equal(t, int64(123), resp.OrderID)
	assert.Equal(t, "FILLED", resp.Status)
}

func TestAPIErrorDecoded(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
	})
	defer srv.Close()

	_, err := c.SymbolInfo(context.Background(), "BAD")
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, -1121, apiErr.Code)
	assert.Equal(t, "Invalid symbol.", apiErr.Msg)
}

func TestLotStepSize(t *testing.T) {
	testCases := []struct {
		desc    string
		filters []Filter
		step    string
		ok      bool
	}{
		{"present", []Filter{{FilterType: "LOT_SIZE", StepSize: "0.001"}}, "0.001", true},
		{"missing", []Filter{{FilterType: "PRICE_FILTER", TickSize: "0.01"}}, "", false},
		{"no filters", nil, "", false},
		{"zero step", []Filter{{FilterType: "LOT_SIZE", StepSize: "0"}}, "", false},
		{"malformed step", []Filter{{FilterType: "LOT_SIZE", StepSize: "abc"}}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			step, ok := SymbolInfo{Symbol: "X", Filters: tc.filters}.LotStepSize()
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, step.Equal(decimal.RequireFromString(tc.step)))
			}
		})
	}
}
