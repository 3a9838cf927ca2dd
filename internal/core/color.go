package core

// Color identifies the color of a screen cell or a block.
// It is a closed set; anything outside it renders as ColorGray.
type Color uint8

// Predefined colors. The seven piece colors follow the classic palette.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
	ColorGray
	ColorDim
	ColorWhite
	ColorBrightRed

	colorCount
)

// Resolve returns c if it is a known color and ColorGray otherwise.
func (c Color) Resolve() Color {
	if c >= colorCount {
		return ColorGray
	}
	return c
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c.Resolve() {
	case ColorDefault:
		return "default"
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorDim:
		return "dim"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright-red"
	default:
		return "gray"
	}
}
