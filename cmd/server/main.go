package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/adrisev99/automated-trading-bot-binance/internal/alert"
	"github.com/adrisev99/automated-trading-bot-binance/internal/binance"
	"github.com/adrisev99/automated-trading-bot-binance/internal/config"
	"github.com/adrisev99/automated-trading-bot-binance/internal/events"
	httpserver "github.com/adrisev99/automated-trading-bot-binance/internal/http"
	"github.com/adrisev99/automated-trading-bot-binance/internal/orders"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	client := binance.NewClient(cfg.BinanceBaseURL, cfg.BinanceAPIKey, cfg.BinanceAPISecret, cfg.HTTPTimeout)

	var pub orders.Publisher
	if cfg.KafkaBrokers != "" {
		p := events.NewPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		defer p.Close()
		pub = p
		logger.Info("order events enabled", zap.String("topic", cfg.KafkaTopic))
	}

	svc := orders.New(client, pub, logger)
	parser := alert.NewParser(cfg.QuoteAsset)

	s := httpserver.NewServer(parser, svc, client, logger, cfg.CORSOrigin)

	server := &http.Server{Addr: ":" + cfg.Port, Handler: s.R}
	go func() {
		logger.Info("http listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http", zap.Error(err))
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShut()
	_ = server.Shutdown(ctxShut)
	logger.Info("shutdown complete")
}
