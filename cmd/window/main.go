package main

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/object"
	"github.com/tomz197/rockfall/internal/sim"
)

// Game adapts a Simulation to ebiten's Update/Draw cycle.
type Game struct {
	sim *sim.Simulation
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	logger := config.NewLogger(os.Stderr, "window")

	seed := config.GetEnvUint64("ROCKFALL_SEED", rand.Uint64())
	game := &Game{
		sim: sim.New(sim.Options{
			Rand:   rand.New(rand.NewPCG(seed, seed)),
			Logger: logger,
		}),
	}

	ebiten.SetWindowSize(config.ArenaWidth, config.ArenaHeight)
	ebiten.SetWindowTitle("rockfall")
	ebiten.SetTPS(config.TargetFPS)

	logger.Info("starting", "seed", seed)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game error", "err", err)
	}
	logger.Info("exited", "playerHits", game.sim.PlayerHits())
}

// Update reads the keyboard and mouse and advances one frame.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.sim.AdvanceFrame(object.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	})
	return nil
}

// Draw paints the current snapshot on a black background.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, s := range g.sim.RenderSnapshot() {
		r := s.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), s.Color, false)
	}
}

// Layout keeps the logical canvas at the arena size regardless of window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ArenaWidth, config.ArenaHeight
}
