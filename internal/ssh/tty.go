// Package ssh adapts a gliderlabs SSH session into a tcell screen so each
// connection can drive its own game.
package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a pseudo-terminal.
var ErrNoPTY = errors.New("session has no pty")

// DefaultTerm is used when the client does not send TERM.
const DefaultTerm = "xterm-256color"

// SessionTty implements tcell.Tty backed by a gliderlabs/ssh session.
type SessionTty struct {
	session gossh.Session
	term    string

	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	cb     func() // resize callback registered by tcell
}

// NewSessionTty wraps a session as a tcell Tty. The session must have
// requested a pty.
func NewSessionTty(s gossh.Session) (*SessionTty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := pty.Term
	if term == "" {
		term = TermFromEnv(s.Environ())
	}
	return &SessionTty{
		session: s,
		term:    term,
		window:  pty.Window,
		winCh:   winCh,
	}, nil
}

// TermFromEnv returns the TERM entry of env, or DefaultTerm.
func TermFromEnv(env []string) string {
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "TERM="); ok && v != "" {
			return v
		}
	}
	return DefaultTerm
}

// Term is the terminal type the client asked for.
func (t *SessionTty) Term() string { return t.term }

// termMu serialises TERM in the process environment, which terminfo lookup
// reads during screen creation.
var termMu sync.Mutex

// NewScreen creates and initialises a tcell screen on t using term for the
// terminfo lookup.
func NewScreen(t *SessionTty, term string) (tcell.Screen, error) {
	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(t)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

// Read reads raw bytes from the SSH session's stdin (keyboard input).
func (t *SessionTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write writes rendered output to the SSH session's stdout.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH session channel.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start is a no-op; the SSH channel is already open.
func (t *SessionTty) Start() error { return nil }

// Stop is a no-op; the channel is owned by the server handler.
func (t *SessionTty) Stop() error { return nil }

// Drain is a no-op; SSH flushes writes immediately.
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers a callback invoked on every window resize event and
// starts draining the window-change channel for the lifetime of the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}
