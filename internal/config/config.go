package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is the payment server configuration, read from the environment.
type Config struct {
	Environment Environment
	HTTP        HTTPServer
	CORS        CORS

	Razorpay Razorpay `envPrefix:"RAZORPAY_"`
	Dynamo   Dynamo
	Ledger   Ledger

	// PaymentGatewayMock accepts 1/true/yes/on/mock.
	PaymentGatewayMock string `env:"PAYMENT_GATEWAY_MOCK"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type HTTPServer struct {
	Host            string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port            string        `env:"PORT" envDefault:"5000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Razorpay holds the gateway credentials. KeyID is public; KeySecret must
// never leave the server.
type Razorpay struct {
	KeyID      string        `env:"KEY_ID"`
	KeySecret  string        `env:"KEY_SECRET"`
	BaseAPIURL string        `env:"BASE_API_URL" envDefault:"https://api.razorpay.com/v1"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

type Dynamo struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
}

type Ledger struct {
	Enabled       bool   `env:"PAYMENT_LEDGER_ENABLED" envDefault:"false"`
	PaymentsTable string `env:"PAYMENTS_TABLE" envDefault:"payment_ledger"`
}

// Load parses the server configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.HTTP.Host + ":" + c.HTTP.Port
}

// GatewayMockEnabled reports whether the gateway should answer with fake orders.
func (c *Config) GatewayMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.PaymentGatewayMock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// GatewayConfigured reports whether real gateway credentials are present.
func (r Razorpay) GatewayConfigured() bool {
	return strings.TrimSpace(r.KeyID) != "" && strings.TrimSpace(r.KeySecret) != ""
}
