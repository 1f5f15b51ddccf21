package tui

import (
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// closeNotifier reports the first read error (io.EOF included) of the
// program input exactly once.
type closeNotifier struct {
	once   sync.Once
	notify func(error)
}

func (c *closeNotifier) report(err error) {
	c.once.Do(func() {
		if c.notify != nil {
			c.notify(err)
		}
	})
}

// watchedFile keeps the *os.File surface (Fd, Name, Write) so raw mode and
// cancelable reads still work on a terminal.
type watchedFile struct {
	*os.File
	closed *closeNotifier
}

func (f watchedFile) Read(p []byte) (int, error) {
	n, err := f.File.Read(p)
	if err != nil {
		f.closed.report(err)
	}
	return n, err
}

type watchedReader struct {
	io.Reader
	closed *closeNotifier
}

func (r watchedReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if err != nil {
		r.closed.report(err)
	}
	return n, err
}

// watchInput wraps in so that the end of the stream reaches the model as an
// inputClosedMsg instead of leaving the loop waiting forever.
func watchInput(in io.Reader, c *closeNotifier) io.Reader {
	if f, ok := in.(*os.File); ok {
		return watchedFile{File: f, closed: c}
	}
	return watchedReader{Reader: in, closed: c}
}
