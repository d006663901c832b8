// Package config loads environment variables into structured, validated
// configuration.
//
// Variables are read with the TRAININGS_ prefix and mapped into nested
// structs via koanf's "." delimiter, e.g. TRAININGS_SERVER.PORT →
// Config.Server.Port. A `.env` file is loaded automatically when present.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Payment       PaymentConfig        `koanf:"payment" validate:"required"`
	Mailer        MailerConfig         `koanf:"mailer"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level runtime environment information.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server settings. Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port"). Redis backs
// the asynq queues and the scheduler.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores JWT signing material and token lifetime.
//
// Tokens are signed asymmetrically: the API signs with the private key, and
// anything holding the public key can verify. Keys are PEM-encoded; the
// worker process only needs the public half.
type AuthConfig struct {
	PrivateKeyPEM      string `koanf:"private_key_pem" validate:"required"`
	PublicKeyPEM       string `koanf:"public_key_pem" validate:"required"`
	AccessTokenMinutes int    `koanf:"access_token_minutes" validate:"required,gt=0"`

	// Optional Telegram two-factor login. When enabled, login returns a
	// pending token plus a bot deep link, and the API only accepts tokens
	// that went through the code exchange. The worker runs the bot.
	TwoFactorEnabled bool   `koanf:"two_factor_enabled"`
	BotName          string `koanf:"bot_name" validate:"required_if=TwoFactorEnabled true"`
	BotToken         string `koanf:"bot_token"`
}

// PaymentConfig configures the external payment-service integration.
// RequestTimeout bounds the outbound call so a hung payment service cannot
// hold a database transaction open indefinitely.
type PaymentConfig struct {
	ServiceURL            string `koanf:"service_url" validate:"required,url"`
	PageURL               string `koanf:"page_url" validate:"required,url"`
	RequestTimeoutSeconds int    `koanf:"request_timeout_seconds" validate:"required,gt=0"`
}

// MailerConfig configures the transactional email provider. Optional: with
// an empty API key the welcome-email task logs and skips sending.
type MailerConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	FromAddress  string `koanf:"from_address"`
}

// Load reads, decodes and validates the configuration. Missing required
// values are fatal: the process should not come up half-configured.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider("TRAININGS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TRAININGS_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are fixed here so telemetry naming stays
	// consistent regardless of what the environment provides.
	mainConfig.Observability.ServiceName = "trainings-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}
