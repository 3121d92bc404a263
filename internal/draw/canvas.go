package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/tomz197/rockfall/internal/physics"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// Each pixel carries a color, rendered through a termenv profile.
type Canvas struct {
	termWidth      int     // Canvas columns
	termHeight     int     // Canvas rows
	subPixelHeight int     // termHeight * 2
	pixels         []uint8 // Flat slice: [y * termWidth + x] - palette index + 1, 0 if unset

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets (columns/rows to skip) for centering.
	offsetCol int
	offsetRow int

	profile  termenv.Profile
	palette  []string // SGR color parameters, foreground form, by palette index
	bgColors []string // SGR color parameters, background form, by palette index
	indexOf  map[color.RGBA]uint8

	renderBuf strings.Builder
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the canvas dimensions in terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64, profile termenv.Profile) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		profile:       profile,
		indexOf:       make(map[color.RGBA]uint8),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]uint8, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, idx uint8) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = idx
	}
}

// colorIndex returns the palette index for col, registering it on first use.
// Indexes are offset by one so that zero means "unset".
func (c *Canvas) colorIndex(col color.RGBA) uint8 {
	if idx, ok := c.indexOf[col]; ok {
		return idx
	}
	if len(c.palette) >= math.MaxUint8 {
		// Palette full; reuse the first color rather than overflow.
		return 1
	}
	tc := c.profile.FromColor(col)
	c.palette = append(c.palette, tc.Sequence(false))
	c.bgColors = append(c.bgColors, tc.Sequence(true))
	idx := uint8(len(c.palette))
	c.indexOf[col] = idx
	return idx
}

// FillRect fills a rectangle given in logical coordinates.
// Every rectangle covers at least one pixel so small objects stay visible.
func (c *Canvas) FillRect(r physics.Rect, col color.RGBA) {
	idx := c.colorIndex(col)

	x0 := int(math.Floor(r.Left() * c.scaleX))
	x1 := int(math.Ceil(r.Right()*c.scaleX)) - 1
	y0 := int(math.Floor(r.Top() * c.scaleY))
	y1 := int(math.Ceil(r.Bottom()*c.scaleY)) - 1
	x1 = max(x1, x0)
	y1 = max(y1, y0)

	// Clip before iterating; off-canvas pixels are dropped anyway.
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, c.termWidth-1)
	y1 = min(y1, c.subPixelHeight-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.setPixel(x, y, idx)
		}
	}
}

// maxChunkSize is the maximum bytes to write at once.
// 1400 bytes keeps each write under a typical 1500-byte MTU once SSH framing is added.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters.
// When the two halves of a cell differ in color, the upper half is drawn in
// the foreground and the lower half in the background.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 16)

	var numBuf [20]byte
	curFG, curBG := uint8(0), uint8(0)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			var fg, bg uint8
			switch {
			case top != 0 && top == bottom:
				ch, fg = BlockFull, top
			case top != 0 && bottom != 0:
				ch, fg, bg = BlockUpperHalf, top, bottom
			case top != 0:
				ch, fg = BlockUpperHalf, top
			case bottom != 0:
				ch, fg = BlockLowerHalf, bottom
			default:
				continue // Skip empty cells
			}

			c.renderBuf.WriteString("\033[")
			c.renderBuf.Write(strconv.AppendInt(numBuf[:0], int64(row+1+c.offsetRow), 10))
			c.renderBuf.WriteByte(';')
			c.renderBuf.Write(strconv.AppendInt(numBuf[:0], int64(col+1+c.offsetCol), 10))
			c.renderBuf.WriteByte('H')

			if fg != curFG || bg != curBG {
				c.writeStyle(fg, bg)
				curFG, curBG = fg, bg
			}
			c.renderBuf.WriteRune(ch)
		}
	}
	if curFG != 0 || curBG != 0 {
		c.renderBuf.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	}

	return writeChunked(w, c.renderBuf.String())
}

// writeStyle emits an SGR sequence resetting attributes and applying fg/bg.
func (c *Canvas) writeStyle(fg, bg uint8) {
	c.renderBuf.WriteString(termenv.CSI + termenv.ResetSeq)
	if seq := c.palette[fg-1]; seq != "" {
		c.renderBuf.WriteByte(';')
		c.renderBuf.WriteString(seq)
	}
	if bg != 0 {
		if seq := c.bgColors[bg-1]; seq != "" {
			c.renderBuf.WriteByte(';')
			c.renderBuf.WriteString(seq)
		}
	}
	c.renderBuf.WriteByte('m')
}

// RenderBorder draws a box border around the canvas area when there is room
// for it on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	bar := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			buf.WriteString(cursorTo(left, top) + "┌" + bar + "┐")
			buf.WriteString(cursorTo(left, bottom) + "└" + bar + "┘")
		} else {
			buf.WriteString(cursorTo(c.offsetCol+1, top) + bar)
			buf.WriteString(cursorTo(c.offsetCol+1, bottom) + bar)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row < c.offsetRow+c.termHeight+1; row++ {
			buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
		}
	}

	return writeChunked(w, buf.String())
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// cursorTo returns an ANSI cursor position sequence (1-based).
func cursorTo(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// writeChunked writes data in chunks of at most maxChunkSize bytes.
func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}
