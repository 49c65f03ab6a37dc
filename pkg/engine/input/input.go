package input

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

// Source delivers intents from an input device to the game loop.
type Source interface {
	Intents() <-chan Intent
	Close() error
}

// Drain returns every intent currently buffered in ch without blocking.
func Drain(ch <-chan Intent) []Intent {
	var out []Intent
	for {
		select {
		case in, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, in)
		default:
			return out
		}
	}
}

// TerminalSource reads single key presses from stdin in raw mode.
type TerminalSource struct {
	fd       int
	oldState *term.State
	intents  chan Intent
}

// NewTerminalSource puts the terminal into raw mode and starts reading keys.
// Close must be called to restore the terminal.
func NewTerminalSource() (*TerminalSource, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}

	s := &TerminalSource{
		fd:       fd,
		oldState: oldState,
		intents:  make(chan Intent, 16),
	}
	go s.readLoop(bufio.NewReader(os.Stdin))
	return s, nil
}

// Intents returns the channel key presses are delivered on.
func (s *TerminalSource) Intents() <-chan Intent {
	return s.intents
}

// Close restores the terminal state saved by NewTerminalSource.
func (s *TerminalSource) Close() error {
	return term.Restore(s.fd, s.oldState)
}

func (s *TerminalSource) readLoop(r io.ByteScanner) {
	err := DecodeKeys(r, func(code string) {
		intent := IntentFor(DeviceTerminal, code)
		if intent.Action == ActionNone {
			return
		}
		// Non-blocking send; drop input if the loop is behind
		select {
		case s.intents <- intent:
		default:
		}
	})
	if err != nil && err != io.EOF {
		log.Printf("Cannot read stdin: %v", err)
	}
}

// DecodeKeys reads raw terminal bytes from r and reports a key code for each
// key press until r returns an error.
func DecodeKeys(r io.ByteScanner, emit func(code string)) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		switch {
		case b == 0x1b:
			code, err := readEscape(r)
			if code != "" {
				emit(code)
			}
			if err != nil {
				return err
			}
		case b == 3:
			emit("ctrl_c")
		case b == '\r' || b == '\n':
			emit("enter")
		case b == 127 || b == 8:
			emit("backspace")
		case b >= 32 && b < 127:
			emit(string(rune(b)))
		}
	}
}

// buffered is implemented by readers that know how many bytes can be read
// without blocking, such as *bufio.Reader.
type buffered interface {
	Buffered() int
}

// readEscape decodes the bytes following ESC. Arrow keys arrive as CSI
// (ESC [) or SS3 (ESC O) sequences; anything else is a bare escape.
// Terminals write a whole sequence at once, so an ESC with nothing buffered
// behind it is the Escape key itself.
func readEscape(r io.ByteScanner) (string, error) {
	if br, ok := r.(buffered); ok && br.Buffered() == 0 {
		return "escape", nil
	}
	b2, err := r.ReadByte()
	if err != nil {
		return "escape", err
	}
	if b2 != '[' && b2 != 'O' {
		// Bare escape; leave the following byte for the next key
		return "escape", r.UnreadByte()
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}
