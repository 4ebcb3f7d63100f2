package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/hexarcade/internal/registry"
)

// ansi16 are the standard terminal colors in xterm's default rendering.
var ansi16 = []string{
	"#000000", "#cd0000", "#00cd00", "#cdcd00", "#0000ee", "#cd00cd", "#00cdcd", "#e5e5e5",
	"#7f7f7f", "#ff0000", "#00ff00", "#ffff00", "#5c5cff", "#ff00ff", "#00ffff", "#ffffff",
}

// cubeLevels are the channel values of the xterm 6x6x6 color cube.
var cubeLevels = [6]float64{0, 95, 135, 175, 215, 255}

// PaletteStyles builds one lipgloss style per palette entry. Each style
// carries the true color plus 256- and 16-color fallbacks so lipgloss can
// degrade for the terminal's profile.
func PaletteStyles(entries []registry.PaletteEntry) []lipgloss.Style {
	styles := make([]lipgloss.Style, len(entries))
	for i, e := range entries {
		c, err := colorful.Hex(e.Hex)
		if err != nil {
			styles[i] = lipgloss.NewStyle()
			continue
		}
		ansi256 := e.ANSI
		if ansi256 <= 0 {
			ansi256 = NearestANSI256(c)
		}
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.CompleteColor{
			TrueColor: c.Hex(),
			ANSI256:   strconv.Itoa(ansi256),
			ANSI:      strconv.Itoa(nearestANSI16(c)),
		})
	}
	return styles
}

// NearestANSI256 returns the xterm-256 color closest to c in Lab space,
// searching the color cube and the gray ramp.
func NearestANSI256(c colorful.Color) int {
	best, bestDist := 16, -1.0
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				cand := colorful.Color{R: cubeLevels[r] / 255, G: cubeLevels[g] / 255, B: cubeLevels[b] / 255}
				if d := c.DistanceLab(cand); bestDist < 0 || d < bestDist {
					best, bestDist = 16+36*r+6*g+b, d
				}
			}
		}
	}
	for i := range 24 {
		v := float64(8+10*i) / 255
		if d := c.DistanceLab(colorful.Color{R: v, G: v, B: v}); d < bestDist {
			best, bestDist = 232+i, d
		}
	}
	return best
}

func nearestANSI16(c colorful.Color) int {
	best, bestDist := 0, -1.0
	for i, hex := range ansi16 {
		cand, _ := colorful.Hex(hex)
		if d := c.DistanceLab(cand); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
