package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/gannonh/kata-tui/internal/model"
	"github.com/gannonh/kata-tui/internal/store"
)

var (
	// ErrNotTerminal is returned before any terminal state is touched when
	// stdin or stdout is not an interactive terminal.
	ErrNotTerminal = errors.New("not an interactive terminal")

	// ErrInputClosed is returned after the terminal is restored when the
	// input stream ended or failed while the dashboard was running.
	ErrInputClosed = errors.New("terminal input closed")
)

type Options struct {
	Config *store.Config
	Logger *slog.Logger

	// Input and Output default to os.Stdin and os.Stdout.
	Input  io.Reader
	Output io.Writer
}

// Run shows the dashboard for data until the user quits, the input ends or
// ctx is cancelled. The terminal is restored before Run returns.
func Run(ctx context.Context, data *model.PlanningData, opts Options) error {
	in, out := opts.Input, opts.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if err := EnsureTerminal(in, out); err != nil {
		return err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = store.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	applyColorProfilePreference()
	applyThemePreference(cfg.Theme)
	applyGlyphPreference(cfg.Glyphs)

	m := newAppModel(data, cfg, logger)
	closed := &closeNotifier{}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(watchInput(in, closed)),
		tea.WithOutput(out),
	)
	// Send from a goroutine so the reader never blocks on a stopped loop.
	closed.notify = func(err error) { go p.Send(inputClosedMsg{err: err}) }

	logger.Info("dashboard started", "tick", cfg.TickInterval)
	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("dashboard stopped: %w", ctxErr)
	}
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	logger.Info("dashboard exited")

	if fm, ok := final.(appModel); ok && fm.inputErr != nil {
		if errors.Is(fm.inputErr, io.EOF) {
			return ErrInputClosed
		}
		return fmt.Errorf("%w: %v", ErrInputClosed, fm.inputErr)
	}
	return nil
}

// EnsureTerminal rejects file streams that are not terminals. Other readers
// and writers are accepted as-is.
func EnsureTerminal(in io.Reader, out io.Writer) error {
	for _, s := range []any{in, out} {
		f, ok := s.(*os.File)
		if !ok {
			continue
		}
		if !term.IsTerminal(int(f.Fd())) {
			return fmt.Errorf("%w: %s", ErrNotTerminal, f.Name())
		}
	}
	return nil
}
