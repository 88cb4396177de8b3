// Package input maps raw key input to the game's key codes.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals send repeats while a key is down and nothing when it goes up.
const keyHoldDuration = 80 * time.Millisecond

// Key identifies a game key independent of the front end.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyFire
	KeyEnter
	KeyPause
	KeyQuit
)

// Keys lists every mapped key in a stable order.
var Keys = []Key{KeyLeft, KeyRight, KeyUp, KeyFire, KeyEnter, KeyPause, KeyQuit}

// String returns a short name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyFire:
		return "fire"
	case KeyEnter:
		return "enter"
	case KeyPause:
		return "pause"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// Input is the set of keys held during the current frame.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Fire  bool
	Enter bool
	Pause bool
	Quit  bool
}

// Held reports whether k is down in this snapshot.
func (in Input) Held(k Key) bool {
	switch k {
	case KeyLeft:
		return in.Left
	case KeyRight:
		return in.Right
	case KeyUp:
		return in.Up
	case KeyFire:
		return in.Fire
	case KeyEnter:
		return in.Enter
	case KeyPause:
		return in.Pause
	case KeyQuit:
		return in.Quit
	default:
		return false
	}
}

// keyState tracks the last time each key was seen.
type keyState struct {
	last map[Key]time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Unfinished escape sequence from the previous drain
	now     func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:    make(chan byte, 128),
		state: keyState{last: make(map[Key]time.Time)},
		now:   time.Now,
	}
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the keys held this frame. Arrow keys arrive as CSI escape sequences.
func ReadInput(s *Stream) Input {
	now := s.now()
	buf := s.pending
	s.pending = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.state.last[KeyQuit] = now
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			rest := buf[i+1:]
			if len(rest) == 0 || (len(rest) == 1 && rest[0] == '[') {
				// The rest of the sequence arrives with the next drain.
				s.pending = append(s.pending, buf[i:]...)
				break
			}
			if rest[0] == '[' {
				if k := arrowKey(rest[1]); k != KeyNone {
					s.state.last[k] = now
				}
				i += 2
			}
			continue
		}

		if k := byteKey(b); k != KeyNone {
			s.state.last[k] = now
		}
	}

	held := func(k Key) bool {
		t, ok := s.state.last[k]
		return ok && now.Sub(t) < keyHoldDuration
	}

	return Input{
		Left:  held(KeyLeft),
		Right: held(KeyRight),
		Up:    held(KeyUp),
		Fire:  held(KeyFire),
		Enter: held(KeyEnter),
		Pause: held(KeyPause),
		Quit:  held(KeyQuit),
	}
}

func arrowKey(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	default:
		return KeyNone
	}
}

// byteKey maps a single byte to a key.
func byteKey(b byte) Key {
	switch b {
	case 'q', 'Q', '\x03':
		return KeyQuit
	case 'a', 'A', 'j', 'J':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case 'w', 'W', 'i', 'I':
		return KeyUp
	case ' ':
		return KeyFire
	case '\n', '\r':
		return KeyEnter
	case 'p', 'P':
		return KeyPause
	default:
		return KeyNone
	}
}

// Tracker turns consecutive held-key snapshots into press and release edges.
type Tracker struct {
	prev Input
}

// Edges compares cur with the previous snapshot and returns the keys that
// went down and the keys that came up, in Keys order.
func (t *Tracker) Edges(cur Input) (pressed, released []Key) {
	for _, k := range Keys {
		was, is := t.prev.Held(k), cur.Held(k)
		switch {
		case is && !was:
			pressed = append(pressed, k)
		case was && !is:
			released = append(released, k)
		}
	}
	t.prev = cur
	return pressed, released
}
