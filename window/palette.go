package window

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette colours the window until the engine renders its first frame.
type Palette struct {
	Background color.NRGBA
	Foreground color.NRGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff},
		Foreground: color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff},
	}
}

// ParsePalette reads "#rrggbb" or "#rgb" colours. An empty string keeps
// the default for that slot.
func ParsePalette(background, foreground string) (Palette, error) {
	p := DefaultPalette()
	var err error
	if background != "" {
		if p.Background, err = parseHex(background); err != nil {
			return DefaultPalette(), fmt.Errorf("window background: %w", err)
		}
	}
	if foreground != "" {
		if p.Foreground, err = parseHex(foreground); err != nil {
			return DefaultPalette(), fmt.Errorf("window foreground: %w", err)
		}
	}
	return p, nil
}

// Dark reports whether the background needs light widgets on top of it.
func (p Palette) Dark() bool {
	bg, _ := colorful.MakeColor(p.Background)
	l, _, _ := bg.Lab()
	return l < 0.5
}

func parseHex(s string) (color.NRGBA, error) {
	if len(s) != 4 && len(s) != 7 {
		return color.NRGBA{}, fmt.Errorf("%q is not a hex colour", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
