// Package pty drives a Bubble Tea program through a pseudo-terminal, so the
// grid can be exercised with the byte sequences a real terminal sends.
package pty

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// DefaultSize is a classic 80x24 terminal.
var DefaultSize = Size{Rows: 24, Cols: 80}

// sequences maps key names to what an xterm-compatible terminal sends.
var sequences = map[string]string{
	"up":        "\x1b[A",
	"down":      "\x1b[B",
	"right":     "\x1b[C",
	"left":      "\x1b[D",
	"home":      "\x1b[H",
	"end":       "\x1b[F",
	"ctrl+home": "\x1b[1;5H",
	"ctrl+end":  "\x1b[1;5F",
	"tab":       "\t",
	"shift+tab": "\x1b[Z",
	"enter":     "\r",
	"esc":       "\x1b",
	"backspace": "\x7f",
	"ctrl+c":    "\x03",
}

// Sequence returns the bytes for a key name. Names without a mapping are
// sent as typed text.
func Sequence(key string) string {
	if s, ok := sequences[key]; ok {
		return s
	}
	return key
}

// Terminal is an open pseudo-terminal pair. The program reads from and
// writes to TTY; the test side types into Master.
type Terminal struct {
	Master *os.File
	TTY    *os.File
}

// Open allocates a pseudo-terminal of the given size.
func Open(size Size) (*Terminal, error) {
	master, tty, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("open pty: %w", err)
	}
	if err := pty.Setsize(tty, &pty.Winsize{Rows: size.Rows, Cols: size.Cols}); err != nil {
		_ = master.Close()
		_ = tty.Close()
		return nil, fmt.Errorf("set pty size: %w", err)
	}
	return &Terminal{Master: master, TTY: tty}, nil
}

// Drain discards everything the program writes, so its output never blocks
// on a full pty buffer. It returns when the master is closed.
func (t *Terminal) Drain() {
	go func() {
		_, _ = io.Copy(io.Discard, t.Master)
	}()
}

// Type sends keys one at a time, pausing gap between them so each arrives
// as its own read. It stops early when ctx is done.
func (t *Terminal) Type(ctx context.Context, gap time.Duration, keys ...string) error {
	for _, k := range keys {
		if _, err := t.Master.WriteString(Sequence(k)); err != nil {
			return fmt.Errorf("write %q: %w", k, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(gap):
		}
	}
	return nil
}

// Close closes both ends.
func (t *Terminal) Close() error {
	errT := t.TTY.Close()
	errM := t.Master.Close()
	if errT != nil {
		return errT
	}
	return errM
}
