// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging
package logger

import (
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/fitstack/trainings-api/internal/config"
)

// LoggerService wraps the optional New Relic application instance.
// With no license key configured nrApp stays nil and every method
// degrades to a no-op, so callers never need to branch on "is APM on".
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes the New Relic agent from observability
// config. Returns a service with a nil application when no license key is
// set; that is not an error, just telemetry switched off.
func NewLoggerService(cfg *config.ObservabilityConfig) (*LoggerService, error) {
	if cfg == nil || cfg.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
	}
	if cfg.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	nrApp, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, err
	}

	return &LoggerService{nrApp: nrApp}, nil
}

// GetApplication returns the New Relic application, or nil when APM is
// not configured.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// Shutdown flushes remaining telemetry, waiting up to the given timeout.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s == nil || s.nrApp == nil {
		return
	}
	s.nrApp.Shutdown(timeout)
}

// New builds the application's root zerolog logger.
//
// Output format and level come from observability config. When New Relic
// is active, log lines pass through zerologWriter so they are decorated
// with linking metadata and forwarded to the APM backend.
func New(cfg *config.ObservabilityConfig, loggerService *LoggerService) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	if app := loggerService.GetApplication(); app != nil {
		out = zerologWriter.New(out, app)
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Logger()

	return &logger
}

// NewPgxLogger returns a logger dedicated to pgx tracelog output. Kept
// separate from the root logger so SQL noise is tagged and filterable.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto pgx tracelog levels.
// The returned value matches tracelog.LogLevel* constants.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return 2 // tracelog.LogLevelError
	default:
		return 1 // tracelog.LogLevelNone
	}
}

// WithTraceContext returns a child logger carrying the transaction's
// trace.id and span.id, so log lines correlate with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()
	ctx := logger.With()
	if md.TraceID != "" {
		ctx = ctx.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		ctx = ctx.Str("span.id", md.SpanID)
	}
	return ctx.Logger()
}
