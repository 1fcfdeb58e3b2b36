// Package logs builds the process-wide slog logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"catalog/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// Options shape the handler built by Build.
type Options struct {
	Level     string
	Pretty    bool
	AddSource bool

	// Attrs are attached to every record, e.g. the service name.
	Attrs []slog.Attr
}

// New creates the stdout logger described by env.log, tagged with the service and environment.
func New(params Params) (*slog.Logger, error) {
	env := params.Config.Env

	var attrs []slog.Attr
	if env.ServiceName != "" {
		attrs = append(attrs, slog.String("service", env.ServiceName))
	}
	if env.Env != "" {
		attrs = append(attrs, slog.String("env", env.Env))
	}

	return Build(os.Stdout, Options{
		Level:     env.Log.Level,
		Pretty:    env.Log.Pretty,
		AddSource: env.Debug,
		Attrs:     attrs,
	})
}

// Build creates a logger writing to w: text when pretty, JSON otherwise.
func Build(w io.Writer, opts Options) (*slog.Logger, error) {
	level, err := parseLogLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level, AddSource: opts.AddSource}

	var handler slog.Handler
	if opts.Pretty {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}

	if len(opts.Attrs) > 0 {
		handler = handler.WithAttrs(opts.Attrs)
	}

	return slog.New(handler), nil
}

// parseLogLevel converts string log level to slog.Level; empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
