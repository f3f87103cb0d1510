package core

import "fmt"

// ColorRGB is an immutable 24-bit color. Only the View interprets it.
type ColorRGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c ColorRGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Named colors used by the minigames and panel backgrounds.
func Black() ColorRGB  { return ColorRGB{0, 0, 0} }
func White() ColorRGB  { return ColorRGB{255, 255, 255} }
func Red() ColorRGB    { return ColorRGB{220, 50, 47} }
func Green() ColorRGB  { return ColorRGB{0, 200, 0} }
func Blue() ColorRGB   { return ColorRGB{0, 90, 255} }
func Yellow() ColorRGB { return ColorRGB{255, 215, 0} }
func Orange() ColorRGB { return ColorRGB{255, 165, 0} }
func Aqua() ColorRGB   { return ColorRGB{0, 255, 255} }
func Gray() ColorRGB   { return ColorRGB{128, 128, 128} }
func Brown() ColorRGB  { return ColorRGB{139, 90, 43} }
