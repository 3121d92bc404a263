package draw

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/tomz197/rockfall/internal/object"
)

// controlsHint is shown on the first terminal row.
const controlsHint = "WASD/arrows move · SPACE fire · Q quit"

// TerminalRenderer draws simulation snapshots into a terminal. The square
// arena is scaled to the largest area that fits and centered with a border.
type TerminalRenderer struct {
	out      *ChunkWriter
	canvas   *Canvas
	sizeFunc TermSizeFunc
	hint     Text
	termW    int
}

// NewTerminalRenderer creates a renderer writing to w. sizeFunc is consulted
// every frame so terminal resizes take effect immediately.
func NewTerminalRenderer(w io.Writer, sizeFunc TermSizeFunc, profile termenv.Profile, arena object.Arena) *TerminalRenderer {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	return &TerminalRenderer{
		out:      NewChunkWriter(w),
		canvas:   NewScaledCanvas(0, 0, arena.Width, arena.Height, profile),
		sizeFunc: sizeFunc,
		hint:     Text{X: 2, Y: 1, Value: controlsHint},
	}
}

// Render clears the terminal, draws every shape and presents the frame.
func (r *TerminalRenderer) Render(shapes []object.Shape) error {
	termW, termH, err := r.sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	r.fit(termW, termH)

	if err := ClearScreen(r.out); err != nil {
		return err
	}
	r.canvas.Clear()
	for _, s := range shapes {
		r.canvas.FillRect(s.Rect, s.Color)
	}
	if err := r.canvas.Render(r.out); err != nil {
		return err
	}
	if err := r.canvas.RenderBorder(r.out); err != nil {
		return err
	}
	if err := r.hint.Draw(r.out, r.termW); err != nil {
		return err
	}

	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// fit sizes the canvas to the largest square that fits below the hint row,
// leaving one cell on each side for the border. The top border never moves
// above row 2, even if that pushes the canvas past the bottom edge.
func (r *TerminalRenderer) fit(termW, termH int) {
	r.termW = termW

	// A cell is two pixels tall, so a square needs twice as many columns as rows.
	rows := min((termW-2)/2, termH-3)
	rows = max(rows, 1)
	cols := rows * 2

	r.canvas.Resize(cols, rows)
	r.canvas.SetOffset(max((termW-cols)/2, 0), max(1+(termH-1-rows)/2, 2))
}
