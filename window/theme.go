//go:build gui

package window

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// splashTheme draws the configured palette over fyne's default theme,
// picking the light or dark variant to match the background.
type splashTheme struct {
	palette Palette
	variant fyne.ThemeVariant
}

func newSplashTheme(p Palette) *splashTheme {
	v := theme.VariantLight
	if p.Dark() {
		v = theme.VariantDark
	}
	return &splashTheme{palette: p, variant: v}
}

func (s *splashTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground:
		return s.palette.Background
	case theme.ColorNameForeground:
		return s.palette.Foreground
	}
	return theme.DefaultTheme().Color(name, s.variant)
}

func (s *splashTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (s *splashTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (s *splashTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
