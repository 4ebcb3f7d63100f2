package core

// Color represents a foreground color for a screen cell.
// Values below ColorPaletteBase are fixed ANSI colors; values from
// ColorPaletteBase up refer to entries of the configured tile palette,
// which the platform resolves to RGB.
type Color uint8

// Predefined colors for board chrome and text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ColorPaletteBase is the first palette-indexed color.
const ColorPaletteBase Color = 64

// MaxPaletteColors is the number of palette slots Color can address.
const MaxPaletteColors = 256 - int(ColorPaletteBase)

// PaletteColor returns the screen color for palette entry i.
// Indices outside the addressable range map to ColorDefault.
func PaletteColor(i int) Color {
	if i < 0 || i >= MaxPaletteColors {
		return ColorDefault
	}
	return ColorPaletteBase + Color(i)
}

// PaletteIndex reports which palette entry c refers to.
func (c Color) PaletteIndex() (int, bool) {
	if c < ColorPaletteBase {
		return 0, false
	}
	return int(c - ColorPaletteBase), true
}
