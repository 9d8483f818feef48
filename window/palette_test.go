package window

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaletteEmptyKeepsDefaults(t *testing.T) {
	p, err := ParsePalette("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), p)
	assert.True(t, p.Dark())
}

func TestParsePaletteHex(t *testing.T) {
	p, err := ParsePalette("#f5f5dc", "#123")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xf5, G: 0xf5, B: 0xdc, A: 0xff}, p.Background)
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, p.Foreground)
	assert.False(t, p.Dark())
}

func TestParsePaletteInvalid(t *testing.T) {
	for name, tc := range map[string][2]string{
		"background": {"navy", ""},
		"foreground": {"", "#12345"},
	} {
		t.Run(name, func(t *testing.T) {
			p, err := ParsePalette(tc[0], tc[1])
			require.Error(t, err)
			assert.Contains(t, err.Error(), "window "+name)
			assert.Equal(t, DefaultPalette(), p)
		})
	}
}
