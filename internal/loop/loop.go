// Package loop drives a Simulation in a terminal at a fixed tick rate.
package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/input"
	"github.com/tomz197/rockfall/internal/sim"
)

// Options configures a terminal session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Profile      termenv.Profile   // Color profile used for rendering
	Logger       *log.Logger       // Defaults to a discarding logger
	Seed         uint64            // RNG seed; 0 picks a random one
}

// Run plays one session: Input → Update → Draw, once per tick, until the
// player quits, input ends or ctx is cancelled. A rendering error ends the
// session and is returned.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	game := sim.New(sim.Options{
		Rand:   rand.New(rand.NewPCG(seed, seed)),
		Logger: opts.Logger,
	})
	renderer := draw.NewTerminalRenderer(w, opts.TermSizeFunc, opts.Profile, game.Arena())
	stream := input.StartStream(r)
	defer stream.Stop()
	src := &quitWatcher{src: stream}

	if err := draw.HideCursor(w); err != nil {
		return err
	}
	defer func() {
		_ = draw.ClearScreen(w)
		_ = draw.ShowCursor(w)
	}()

	opts.Logger.Info("session started", "seed", seed)

	ticker := time.NewTicker(config.TargetFrameTime)
	defer ticker.Stop()

	for {
		if err := game.Step(src, renderer); err != nil {
			opts.Logger.Error("render failed", "err", err)
			return err
		}
		if src.quit {
			opts.Logger.Info("session ended", "frame", game.Frame(), "playerHits", game.PlayerHits())
			return nil
		}

		select {
		case <-ctx.Done():
			opts.Logger.Info("session cancelled", "err", ctx.Err())
			return nil
		case <-ticker.C:
		}
	}
}

// quitWatcher records whether the polled input asked to quit.
type quitWatcher struct {
	src  *input.Stream
	quit bool
}

func (q *quitWatcher) Poll() input.Input {
	in := q.src.Poll()
	if in.Quit {
		q.quit = true
	}
	return in
}
