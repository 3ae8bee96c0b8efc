// Package ssh adapts a gliderlabs/ssh session into a tcell terminal, so the
// preview server can drive one tcell screen per connected client.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of an SSH session channel. Reads
// come from the client keyboard, writes go to the client terminal, and
// window-change requests feed tcell's resize handling.
type SessionTty struct {
	session gossh.Session
	resizes <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
}

// NewSessionTty wraps session as a tcell Tty. pty carries the initial
// window size; resizes delivers later window-change requests. A single
// goroutine pumps resizes for the lifetime of the session channel.
func NewSessionTty(session gossh.Session, pty gossh.Pty, resizes <-chan gossh.Window) *SessionTty {
	t := &SessionTty{
		session: session,
		resizes: resizes,
		window:  pty.Window,
	}
	go t.pumpResizes()
	return t
}

func (t *SessionTty) pumpResizes() {
	for win := range t.resizes {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the underlying SSH channel, which also ends the resize pump.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start, Stop, and Drain are no-ops: the SSH channel is already open when
// the Tty is built and stays owned by the server handler.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize reports the client's current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers the callback tcell wants invoked on every
// window-change request.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
}
