package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMovementKeys(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.apply([]byte("wd"), now)
	assert.True(t, in.Up)
	assert.True(t, in.Right)
	assert.False(t, in.Down)
	assert.False(t, in.Left)
	assert.False(t, in.Fire)
}

func TestApplyArrowKeys(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.apply([]byte("\x1b[A\x1b[D"), now)
	assert.True(t, in.Up)
	assert.True(t, in.Left)
	assert.False(t, in.Quit, "arrow escape sequences are not quit")
}

func TestHeldKeysExpire(t *testing.T) {
	s := newStream()
	now := time.Now()

	s.apply([]byte("a"), now)

	in := s.apply(nil, now.Add(keyHoldDuration/2))
	assert.True(t, in.Left, "key stays held within the hold window")

	in = s.apply(nil, now.Add(keyHoldDuration))
	assert.False(t, in.Left, "key is released after the hold window")
}

func TestFireIsEdgeTriggered(t *testing.T) {
	s := newStream()
	now := time.Now()

	in := s.apply([]byte(" "), now)
	assert.True(t, in.Fire)

	in = s.apply(nil, now.Add(time.Millisecond))
	assert.False(t, in.Fire, "fire must not repeat without a new press")
}

func TestQuitKeys(t *testing.T) {
	for _, b := range []byte{'q', 'Q', '\x03'} {
		s := newStream()
		assert.True(t, s.apply([]byte{b}, time.Now()).Quit, "byte %q", b)
	}
}

func TestPollReportsQuitOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w")))

	require.Eventually(t, func() bool {
		return s.Poll().Quit
	}, time.Second, time.Millisecond)

	// Stays closed.
	assert.True(t, s.Poll().Quit)
}

func TestPollDrainsPendingBytes(t *testing.T) {
	s := newStream()
	fixed := time.Now()
	s.now = func() time.Time { return fixed }

	s.ch <- 's'
	s.ch <- ' '

	in := s.Poll()
	assert.True(t, in.Down)
	assert.True(t, in.Fire)
	assert.False(t, in.Quit)

	in = s.Poll()
	assert.True(t, in.Down, "still within the hold window")
	assert.False(t, in.Fire)
}

// endlessReader yields the same byte forever.
type endlessReader byte

func (e endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(e)
	}
	return len(p), nil
}

func TestStopReleasesBlockedReader(t *testing.T) {
	s := StartStream(bufio.NewReader(endlessReader('w')))

	require.Eventually(t, func() bool {
		return len(s.ch) == cap(s.ch)
	}, time.Second, time.Millisecond, "nobody polls, so the buffer fills")

	s.Stop()
	s.Stop()

	select {
	case <-s.exited:
	case <-time.After(time.Second):
		t.Fatal("reader goroutine still blocked after Stop")
	}
}
