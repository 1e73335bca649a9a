package core

import (
	"fmt"
	"strings"
)

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
type Color uint8

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
	ColorGray
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"bright_red":    ColorBrightRed,
	"bright_green":  ColorBrightGreen,
	"bright_yellow": ColorBrightYellow,
	"bright_blue":   ColorBrightBlue,
	"gray":          ColorGray,
}

// ParseColor maps a config color name (e.g. "bright_yellow") to a Color.
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
