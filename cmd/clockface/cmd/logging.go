package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-drift/clockface/pkg/errors"
)

type logOptions struct {
	level string
	json  bool
}

// logger is the process logger configured by setupLogging.
var logger = slog.New(slog.DiscardHandler)

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (use debug, info, warn, error)", s)
	}
}

// setupLogging installs the process logger and routes reported errors
// through it.
func setupLogging(opts logOptions, w io.Writer) error {
	level, err := parseLevel(opts.level)
	if err != nil {
		return err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if opts.json {
		h = slog.NewJSONHandler(w, handlerOpts)
	} else {
		h = slog.NewTextHandler(w, handlerOpts)
	}
	logger = slog.New(h)
	slog.SetDefault(logger)
	errors.SetHandler(&errors.LogHandler{
		Logger:  logger,
		Verbose: level <= slog.LevelDebug,
	})
	return nil
}
