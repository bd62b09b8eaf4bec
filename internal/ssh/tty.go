// Package ssh turns gliderlabs/ssh sessions into tcell screens so each
// connection can host its own game.
package ssh

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPty is returned for sessions opened without a terminal.
var ErrNoPty = errors.New("session has no pty")

// defaultTerm is used when the client sends no TERM or one outside
// allowedTerms.
const defaultTerm = "xterm-256color"

// allowedTerms lists the TERM values accepted from clients. The value ends
// up in the process environment.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// Tty implements tcell.Tty on top of one SSH session. Window changes
// sent by the client are forwarded to tcell's resize callback.
type Tty struct {
	session gossh.Session
	term    string
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	size     tcell.WindowSize
	onResize func()
	watch    sync.Once
}

// NewTty wraps s. It fails with ErrNoPty when the client did not request
// a terminal.
func NewTty(s gossh.Session) (*Tty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}
	term := pty.Term
	if !allowedTerms[term] {
		term = defaultTerm
	}
	return &Tty{
		session: s,
		term:    term,
		winCh:   winCh,
		size:    tcell.WindowSize{Width: pty.Window.Width, Height: pty.Window.Height},
	}, nil
}

// Term is the terminal type announced by the client.
func (t *Tty) Term() string { return t.term }

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *Tty) Close() error                { return t.session.Close() }

// Start, Stop and Drain have nothing to do: the channel is opened and
// closed by the server handler.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the last size reported by the client.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// goroutine that drains the window channel for the session's lifetime.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
	t.watch.Do(func() { go t.watchWindow() })
}

func (t *Tty) watchWindow() {
	for win := range t.winCh {
		t.mu.Lock()
		t.size = tcell.WindowSize{Width: win.Width, Height: win.Height}
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

// termMu serialises the TERM lookup done while building a screen.
var termMu sync.Mutex

// NewScreen builds an initialised tcell screen for s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	tty, err := NewTty(s)
	if err != nil {
		return nil, err
	}
	// tcell resolves terminfo from the process environment.
	termMu.Lock()
	_ = os.Setenv("TERM", tty.Term())
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}
