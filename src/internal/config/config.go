package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=booking_marketplace_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultChannelID = "MarketplaceAdmin"
const defaultChannelKey = "MarketplaceKey001"

type Config struct {
	DatabaseDSN    string
	HTTPAddr       string
	ChannelID      string
	ChannelKey     string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	Database       DatabaseConfig
	Payment        PaymentConfig
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type DatabaseConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

type PaymentConfig struct {
	StripeSecretKey         string
	StripeWebhookSecret     string
	Currency                string
	GatewayTimeout          time.Duration
	RetryWebhookOnStoreFail bool
}

// Load reads configuration from the environment and, when CONFIG_FILE is set,
// from that file. Environment values win.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DATABASE_DSN", defaultConnectionString)
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("HTTP_READ_TIMEOUT", "10s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "20s")
	v.SetDefault("CHANNEL_ID", defaultChannelID)
	v.SetDefault("CHANNEL_KEY", defaultChannelKey)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 30)
	v.SetDefault("DB_MAX_IDLE_CONNS", 20)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", "5m")
	v.SetDefault("DB_CONN_MAX_LIFETIME", "15m")
	v.SetDefault("PAYMENT_CURRENCY", "usd")
	v.SetDefault("PAYMENT_GATEWAY_TIMEOUT", "15s")
	v.SetDefault("PAYMENT_WEBHOOK_RETRY_ON_STORE_ERROR", false)

	if file := strings.TrimSpace(v.GetString("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", file, err)
		}
	}

	gatewayTimeout, err := parseDuration(v, "PAYMENT_GATEWAY_TIMEOUT")
	if err != nil {
		return Config{}, err
	}
	readTimeout, err := parseDuration(v, "HTTP_READ_TIMEOUT")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := parseDuration(v, "HTTP_WRITE_TIMEOUT")
	if err != nil {
		return Config{}, err
	}

	connMaxIdleTime, err := parseDuration(v, "DB_CONN_MAX_IDLE_TIME")
	if err != nil {
		return Config{}, err
	}
	connMaxLifetime, err := parseDuration(v, "DB_CONN_MAX_LIFETIME")
	if err != nil {
		return Config{}, err
	}

	return Config{
		DatabaseDSN:    normalizeConnectionString(strings.TrimSpace(v.GetString("DATABASE_DSN"))),
		HTTPAddr:       strings.TrimSpace(v.GetString("HTTP_ADDR")),
		ChannelID:      strings.TrimSpace(v.GetString("CHANNEL_ID")),
		ChannelKey:     strings.TrimSpace(v.GetString("CHANNEL_KEY")),
		LogLevel:       strings.TrimSpace(v.GetString("LOG_LEVEL")),
		LogFormat:      strings.TrimSpace(v.GetString("LOG_FORMAT")),
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		Database: DatabaseConfig{
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxIdleTime: connMaxIdleTime,
			ConnMaxLifetime: connMaxLifetime,
		},
		Payment: PaymentConfig{
			StripeSecretKey:         strings.TrimSpace(v.GetString("STRIPE_SECRET_KEY")),
			StripeWebhookSecret:     strings.TrimSpace(v.GetString("STRIPE_WEBHOOK_SECRET")),
			Currency:                strings.ToLower(strings.TrimSpace(v.GetString("PAYMENT_CURRENCY"))),
			GatewayTimeout:          gatewayTimeout,
			RetryWebhookOnStoreFail: v.GetBool("PAYMENT_WEBHOOK_RETRY_ON_STORE_ERROR"),
		},
	}, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func normalizeConnectionString(raw string) string {
	if strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
