// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report key presses (and autorepeat) but never key releases.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
// Direction keys are level-triggered; Fire is an edge event that is true
// only on the frame the press arrived.
type Input struct {
	Quit  bool
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
	now    func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	exited   chan struct{}
}

func newStream() *Stream {
	return &Stream{
		ch:     make(chan byte, 128),
		now:    time.Now,
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once r returns an error (EOF included).
// Call Stop when the stream is no longer polled.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.exited)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop releases the reader goroutine once nobody polls the stream any more.
// A goroutine blocked inside ReadByte exits after that read returns.
// Stop is safe to call more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Poll drains all available bytes from the stream without blocking and
// returns the resulting input for this frame.
func (s *Stream) Poll() Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.apply(buf, s.now())
	if s.closed {
		in.Quit = true
	}
	return in
}

// apply parses buf, updates key timestamps and builds the frame's input.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	var in Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		switch b {
		case 'q', 'Q', '\x03':
			in.Quit = true
		case ' ':
			in.Fire = true
		default:
			applyByteToState(&s.state, b, now)
		}
	}

	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	return in
}

// applyByteToState updates the held key timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case 's', 'S', 'k', 'K':
		state.down = now
	}
}
