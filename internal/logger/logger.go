// Package logger configures the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Options controls logger construction.
type Options struct {
	Level       string // debug, info, warn, error
	Format      string // json or text
	SentryDSN   string // empty disables Sentry
	Environment string
}

// New builds a slog.Logger per the given options and installs it as the
// default. When a Sentry DSN is configured, error-level records are fanned
// out to Sentry in addition to stdout. The returned flush function must be
// called on shutdown to drain buffered Sentry events.
func New(opts Options) (*slog.Logger, func(), error) {
	level := parseLevel(opts.Level)

	var base slog.Handler
	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.Format == "json" {
		base = slog.NewJSONHandler(os.Stdout, handlerOpts)
	} else {
		base = slog.NewTextHandler(os.Stdout, handlerOpts)
	}

	flush := func() {}
	handler := base

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Environment,
		})
		if err != nil {
			return nil, nil, err
		}

		handler = slogmulti.Fanout(
			base,
			slogsentry.Option{Level: slog.LevelError}.NewSentryHandler(),
		)
		flush = func() {
			sentry.Flush(2 * time.Second)
		}
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log, flush, nil
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
