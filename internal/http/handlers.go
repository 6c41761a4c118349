package http

import (
	"io"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adrisev99/automated-trading-bot-binance/internal/alert"
	"github.com/adrisev99/automated-trading-bot-binance/internal/domain"
	"github.com/adrisev99/automated-trading-bot-binance/internal/orders"
)

type Server struct {
	R        *gin.Engine
	Parser   *alert.Parser
	Orders   *orders.Service
	Exchange orders.Exchange
	Logger   *zap.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

type webhookResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
	Symbol  string `json:"symbol"`
}

// NewServer wires the router, parser, order service, and middleware.
func NewServer(parser *alert.Parser, svc *orders.Service, ex orders.Exchange, logger *zap.Logger, corsOrigin string) *Server {
	g := gin.New()

	// Request logging
	g.Use(func(cn *gin.Context) {
		start := time.Now()
		cn.Next()
		logger.Info("http_request",
			zap.String("method", cn.Request.Method),
			zap.String("path", cn.Request.URL.Path),
			zap.Int("status", cn.Writer.Status()),
			zap.String("ip", cn.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	})

	g.Use(gin.Recovery())

	// CORS
	g.Use(func(cn *gin.Context) {
		origin := cn.GetHeader("Origin")
		cn.Writer.Header().Set("Vary", "Origin")
		cn.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		cn.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		cn.Writer.Header().Set("Access-Control-Max-Age", "86400")
		if corsOrigin == "*" {
			cn.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin != "" && origin == corsOrigin {
			cn.Writer.Header().Set("Access-Control-Allow-Origin", corsOrigin)
		}
		if cn.Request.Method == http.MethodOptions {
			cn.AbortWithStatus(http.StatusNoContent)
			return
		}
		cn.Next()
	})

	s := &Server{
		R:        g,
		Parser:   parser,
		Orders:   svc,
		Exchange: ex,
		Logger:   logger,
	}

	g.GET("/", func(cn *gin.Context) { cn.String(http.StatusOK, "Webhook server is running!") })
	g.GET("/health", func(cn *gin.Context) { cn.JSON(http.StatusOK, gin.H{"ok": true}) })
	g.POST("/webhook", s.handleWebhook)
	g.GET("/test", s.handleTest)

	return s
}

// handleWebhook runs the full alert-to-order pipeline: parse the raw alert
// text, validate the action, and submit a market order. One webhook
// delivery triggers at most one order attempt.
func (s *Server) handleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.Logger.Error("read webhook body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to read request body"})
		return
	}
	message := string(body)
	s.Logger.Info("received alert", zap.String("message", message))

	intent, err := s.Parser.Parse(message)
	if err != nil {
		s.Logger.Error("alert rejected", zap.String("message", message), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	side, ok := domain.ParseSide(intent.Action)
	if !ok {
		s.Logger.Error("unknown action", zap.String("action", intent.Action))
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown action"})
		return
	}

	if _, err := s.Orders.Submit(c.Request.Context(), intent.Symbol, side, intent.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, webhookResponse{Success: true, Action: intent.Action, Symbol: intent.Symbol})
}

// handleTest verifies connectivity with the exchange by fetching account
// info. It is a health check, not part of the order pipeline.
func (s *Server) handleTest(c *gin.Context) {
	acct, err := s.Exchange.Account(c.Request.Context())
	if err != nil {
		s.Logger.Error("account check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"account_type": acct.AccountType,
		"balances":     acct.Balances,
	})
}
