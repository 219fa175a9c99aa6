package core

// Color is a terminal color understood by lipgloss: an ANSI code such as
// "208" or a hex value such as "#FF6B6B". The empty string is the
// terminal default.
type Color string

// Predefined colors for UI elements.
const (
	ColorDefault     Color = ""
	ColorBlack       Color = "0"
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorWhite       Color = "7"
	ColorBrightWhite Color = "15"
	ColorOrange      Color = "208"
	ColorGray        Color = "245"
	ColorDarkGray    Color = "238"
)

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
