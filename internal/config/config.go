package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	BinanceAPIKey    string        `env:"BINANCE_API_KEY,required"`
	BinanceAPISecret string        `env:"BINANCE_API_SECRET,required"`
	BinanceBaseURL   string        `env:"BINANCE_BASE_URL" envDefault:"https://api.binance.us"`
	Port             string        `env:"PORT" envDefault:"5000"`
	QuoteAsset       string        `env:"QUOTE_ASSET" envDefault:"USDT"`
	CORSOrigin       string        `env:"CORS_ORIGIN" envDefault:"*"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	KafkaBrokers     string        `env:"KAFKA_BROKERS"`
	KafkaTopic       string        `env:"KAFKA_TOPIC" envDefault:"orders"`
}

func Load() (Config, error) {
	var cfg Config
	return cfg, env.Parse(&cfg)
}
