package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGreen
	ColorSand
	ColorBrown
	ColorPink
	ColorTeal
)

// PlayerColors is the per-player color cycle, in registration order.
var PlayerColors = []Color{
	ColorOrange, ColorTeal, ColorBrightBlue, ColorBrightYellow, ColorMagenta,
	ColorCyan, ColorBrightGreen, ColorSand, ColorBrightRed, ColorGray,
}

// PlayerColor returns the color for a player's palette index.
func PlayerColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return PlayerColors[i%len(PlayerColors)]
}
