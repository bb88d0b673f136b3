package core

// Color represents a foreground color for a screen cell.
// Front-ends map these to concrete terminal colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorGray
)
