package draw

import "io"

// Text is a line of text at a fixed terminal position.
// Coordinates are 1-based terminal positions.
type Text struct {
	X     int
	Y     int
	Value string
}

// Draw writes the text at its position using ANSI cursor movement.
// Text running past maxWidth columns is cut off.
func (t Text) Draw(w io.Writer, maxWidth int) error {
	if t.Value == "" || maxWidth <= 0 {
		return nil
	}
	x := max(t.X, 1)
	y := max(t.Y, 1)

	value := []rune(t.Value)
	if room := maxWidth - x + 1; len(value) > room {
		if room <= 0 {
			return nil
		}
		value = value[:room]
	}

	_, err := io.WriteString(w, cursorTo(x, y)+string(value))
	return err
}
