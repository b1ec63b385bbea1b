package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	PayServer *PayServer
	Payment   *Payment
	App       *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// PayServer points at the external payment-watching service
// (auto-receive-crypto-pay). The auth secret is what that service presents on
// its transfer notifications.
type PayServer struct {
	BaseURL    string `env:"PAY_SERVER_URL"`
	AuthSecret string `env:"PAY_SERVER_AUTH"`
}

// Payment is the checkout-facing method surface. ConfirmBlocks is advisory,
// shown to the payer and never used by reconciliation.
type Payment struct {
	Enabled       bool   `env:"PAYMENT_ENABLED" envDefault:"true"`
	DisplayName   string `env:"PAYMENT_DISPLAY_NAME" envDefault:"USDT (TRC20)"`
	Icon          string `env:"PAYMENT_ICON" envDefault:"💎"`
	Network       string `env:"PAYMENT_NETWORK" envDefault:"TRON_MAINNET"`
	ConfirmBlocks int    `env:"PAYMENT_CONFIRM_BLOCKS" envDefault:"25"`
}

// URIScheme returns the payment URI scheme for the configured network.
// Both supported network selectors (TRON_MAINNET, TRON_TESTNET) are Tron chains.
func (p *Payment) URIScheme() string {
	return "tron"
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var payServer PayServer
	var payment Payment
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&payServer.BaseURL, "p", "", "Pay server base URL")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&payServer)
	if err != nil {
		return nil, fmt.Errorf("error parsing pay server config: %w", err)
	}
	err = env.Parse(&payment)
	if err != nil {
		return nil, fmt.Errorf("error parsing payment config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		PayServer: &payServer,
		Payment:   &payment,
		App:       &app,
	}

	return &config, nil
}
