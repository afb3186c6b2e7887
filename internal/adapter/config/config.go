package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	App        *App
	Database   *Database
	HTTP       *HTTP
	Platega    *Platega
	CryptoPay  *CryptoPay
	Telegram   *Telegram
	Tickets    *Tickets
	Reconciler *Reconciler
	Staff      *Staff
	Catalog    *Catalog
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
	// DataDir holds the JSON fallback storage used when no database DSN
	// is configured.
	DataDir string `env:"DATA_DIR"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Platega struct {
	BaseURL    string `env:"PLATEGA_BASE_URL"`
	MerchantID string `env:"PLATEGA_MERCHANT_ID"`
	Secret     string `env:"PLATEGA_SECRET"`
	ReturnURL  string `env:"PLATEGA_RETURN_URL"`
	FailedURL  string `env:"PLATEGA_FAILED_URL"`
}

type CryptoPay struct {
	BaseURL string `env:"CRYPTOPAY_BASE_URL"`
	Token   string `env:"CRYPTOPAY_TOKEN"`
	// InvoiceExpiresIn is passed to the provider as the invoice lifetime.
	InvoiceExpiresIn time.Duration `env:"CRYPTOPAY_INVOICE_EXPIRES_IN" envDefault:"30m"`
}

type Telegram struct {
	Token         string  `env:"TELEGRAM_TOKEN"`
	ManagerIDs    []int64 `env:"MANAGER_IDS" envSeparator:","`
	TicketsChatID int64   `env:"TICKETS_CHAT_ID"`
}

type Tickets struct {
	AMQPURI string `env:"TICKETS_AMQP_URI"`
	Queue   string `env:"TICKETS_QUEUE" envDefault:"tickets"`
}

type Reconciler struct {
	PollInterval    time.Duration `env:"POLL_INTERVAL" envDefault:"15s"`
	MaxPollDuration time.Duration `env:"MAX_POLL_DURATION" envDefault:"30m"`
	Workers         int           `env:"RECONCILER_WORKERS" envDefault:"4"`
}

type Staff struct {
	Key string `env:"STAFF_KEY"`
	// TokenTTL bounds the lifetime of issued staff tokens.
	TokenTTL time.Duration `env:"STAFF_TOKEN_TTL" envDefault:"12h"`
}

type Catalog struct {
	Path string `env:"CATALOG_PATH" envDefault:"data/products.json"`
}

func NewConfig() (*Config, error) {
	var app App
	var db Database
	var http HTTP
	var platega Platega
	var cryptoPay CryptoPay
	var telegram Telegram
	var tickets Tickets
	var reconciler Reconciler
	var staff Staff
	var catalog Catalog

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.StringVar(&app.DataDir, "data", `data`, "JSON fallback storage dir")
	flag.Parse()

	for name, target := range map[string]any{
		"app":        &app,
		"database":   &db,
		"http":       &http,
		"platega":    &platega,
		"cryptopay":  &cryptoPay,
		"telegram":   &telegram,
		"tickets":    &tickets,
		"reconciler": &reconciler,
		"staff":      &staff,
		"catalog":    &catalog,
	} {
		if err := env.Parse(target); err != nil {
			return nil, fmt.Errorf("error parsing env %s config: %w", name, err)
		}
	}

	if app.Mode == AppModeProduction {
		if db.DSN == "" {
			return nil, fmt.Errorf("DATABASE_URI is required in %s mode", AppModeProduction)
		}
		if platega.MerchantID == "" || platega.Secret == "" {
			return nil, fmt.Errorf("platega credentials are required in %s mode", AppModeProduction)
		}
		if cryptoPay.Token == "" {
			return nil, fmt.Errorf("CRYPTOPAY_TOKEN is required in %s mode", AppModeProduction)
		}
	}

	config := Config{
		App:        &app,
		Database:   &db,
		HTTP:       &http,
		Platega:    &platega,
		CryptoPay:  &cryptoPay,
		Telegram:   &telegram,
		Tickets:    &tickets,
		Reconciler: &reconciler,
		Staff:      &staff,
		Catalog:    &catalog,
	}

	return &config, nil
}
