package theme

import (
	"testing"

	"github.com/appengine-ltd/age-of-polders/internal/terrain"
)

func TestTerrainIsOpaque(t *testing.T) {
	got := Terrain(terrain.RGB{R: 10, G: 20, B: 30})
	if got.R != 10 || got.G != 20 || got.B != 30 || got.A != 255 {
		t.Fatalf("unexpected color %+v", got)
	}
}
