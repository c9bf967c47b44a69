package render

import (
	"testing"

	"github.com/plus3/blockfall/internal/assets"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestPlacementFillsCell(t *testing.T) {
	cases := []struct {
		name             string
		texSize, x, size int
	}{
		{"board", 30, 40, 30},
		{"preview", 30, 400, 22},
		{"upscaled", 16, 8, 32},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := placement(tc.texSize, tc.x, 12, tc.size)

			x0, y0 := m.Apply(0, 0)
			assert.InDelta(t, float64(tc.x), x0, 1e-9)
			assert.InDelta(t, 12, y0, 1e-9)

			x1, y1 := m.Apply(float64(tc.texSize), float64(tc.texSize))
			assert.InDelta(t, float64(tc.x+tc.size), x1, 1e-9)
			assert.InDelta(t, float64(12+tc.size), y1, 1e-9)
		})
	}
}

func TestTextureFallsBackToColor(t *testing.T) {
	textured := tetris.Decoration{Color: tetris.ColorOf(tetris.KindT), Texture: 1}
	plain := tetris.Decoration{Color: tetris.ColorOf(tetris.KindT)}

	r := &Renderer{}
	assert.Nil(t, r.texture(textured), "no registry")

	r.Assets = assets.NewRegistry(30)
	assert.Nil(t, r.texture(plain))
	assert.Nil(t, r.texture(textured), "unknown texture id")
}
