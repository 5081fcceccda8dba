package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Store backends understood by the reader.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Reader configures the reader-side purchase client.
type Reader struct {
	ServerURL       string        `env:"SERVER_URL" envDefault:"http://localhost:5000"`
	RazorpayKeyID   string        `env:"RAZORPAY_KEY_ID"`
	SiteName        string        `env:"SITE_NAME" envDefault:"OpenReaders"`
	Store           string        `env:"STORE" envDefault:"sqlite"`
	SQLitePath      string        `env:"SQLITE_PATH" envDefault:"openreaders.db"`
	RedisURL        string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	StorePrefix     string        `env:"STORE_PREFIX" envDefault:"openreaders_"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
	CheckoutTimeout time.Duration `env:"CHECKOUT_TIMEOUT" envDefault:"10m"`
	FreePages       int           `env:"FREE_PAGES" envDefault:"10"`
}

// LoadReader parses OPENREADERS_* variables.
func LoadReader() (*Reader, error) {
	cfg := &Reader{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "OPENREADERS_"}); err != nil {
		return nil, err
	}
	return cfg, nil
}
