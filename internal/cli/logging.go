package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// newLogger returns a text logger appending to path, or a discarding logger
// when path is empty. The dashboard owns stdout, so logs never go there.
func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q (want debug|info|warn|error)", level)
	}
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lv}))
	return logger, func() { _ = f.Close() }, nil
}
