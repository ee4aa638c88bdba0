package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env"
)

// Config is the process level configuration read from the environment.
//
// Gateway and supplier credentials are not here: the operator manages them in
// the settings/general document. AdminPassword only bootstraps admin access
// while that document has no password yet.
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	BasePath string `env:"API_BASE_PATH" envDefault:"/api"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`

	AdminPassword string `env:"ADMIN_PASSWORD"`

	AWSRegion        string `env:"AWS_REGION" envDefault:"us-east-1"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`

	ProductsTable     string `env:"PRODUCTS_TABLE" envDefault:"products"`
	TransactionsTable string `env:"TRANSACTIONS_TABLE" envDefault:"transactions"`
	SettingsTable     string `env:"SETTINGS_TABLE" envDefault:"settings"`

	TripayBaseURL     string        `env:"TRIPAY_BASE_URL"`
	DigiflazzBaseURL  string        `env:"DIGIFLAZZ_BASE_URL" envDefault:"https://api.digiflazz.com/v1"`
	NicknameBaseURL   string        `env:"NICKNAME_BASE_URL" envDefault:"https://api.isan.eu.org/nickname"`
	HTTPClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"15s"`
	PaymentMock       bool          `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`

	CustomerEmail string `env:"STORE_CUSTOMER_EMAIL" envDefault:"customer@topup.local"`
	CustomerPhone string `env:"STORE_CUSTOMER_PHONE" envDefault:"081234567890"`
	ReturnURL     string `env:"STORE_RETURN_URL"`

	CatalogDefaultMarkup int64  `env:"CATALOG_DEFAULT_MARKUP" envDefault:"0"`
	PlaceholderImage     string `env:"CATALOG_PLACEHOLDER_IMAGE" envDefault:"https://placehold.co/200x200?text=Top+Up"`
	UploadMaxBytes       int64  `env:"UPLOAD_MAX_BYTES" envDefault:"2097152"`

	RedisAddr       string        `env:"REDIS_ADDR"`
	ChannelCacheTTL time.Duration `env:"CHANNEL_CACHE_TTL" envDefault:"5m"`

	KafkaBrokers string `env:"KAFKA_BROKERS"`
	KafkaTopic   string `env:"KAFKA_ORDER_TOPIC" envDefault:"topup.orders"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"LOG_FILE"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.BasePath = "/" + strings.Trim(cfg.BasePath, "/")
	return cfg, nil
}

// Brokers splits KAFKA_BROKERS; empty means event publishing is disabled.
func (c Config) Brokers() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
