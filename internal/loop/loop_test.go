package loop

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(logs io.Writer) Options {
	return Options{
		TermSizeFunc: func() (int, int, error) { return 80, 24, nil },
		Profile:      termenv.Ascii,
		Logger:       log.New(logs),
		Seed:         42,
	}
}

// runWithTimeout fails the test if Run does not return in time.
func runWithTimeout(t *testing.T, ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(r), w, opts)
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	var out, logs bytes.Buffer
	err := runWithTimeout(t, context.Background(), strings.NewReader("wq"), &out, testOptions(&logs))
	require.NoError(t, err)

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "\033[?25l"), "cursor is hidden first")
	assert.True(t, strings.HasSuffix(s, "\033[?25h"), "cursor is restored last")
	assert.Contains(t, s, "┌", "at least one frame was drawn")
	assert.Contains(t, logs.String(), "session ended")
}

func TestRunEndsOnInputEOF(t *testing.T) {
	var out, logs bytes.Buffer
	err := runWithTimeout(t, context.Background(), strings.NewReader(""), &out, testOptions(&logs))
	require.NoError(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	var out, logs bytes.Buffer
	err := runWithTimeout(t, ctx, pr, &out, testOptions(&logs))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "session cancelled")
}

// flakyWriter accepts the first ok writes and fails afterwards.
type flakyWriter struct {
	ok  int
	err error
}

func (f *flakyWriter) Write(p []byte) (int, error) {
	if f.ok == 0 {
		return 0, f.err
	}
	f.ok--
	return len(p), nil
}

func TestRunReturnsRenderError(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	boom := errors.New("connection reset")
	var logs bytes.Buffer
	err := runWithTimeout(t, context.Background(), pr, &flakyWriter{ok: 1, err: boom}, testOptions(&logs))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, logs.String(), "render failed")
}
