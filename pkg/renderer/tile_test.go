package renderer

import (
	"image"
	"testing"
)

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 64, 64, 32, 4},
		{"partial edges", 70, 33, 32, 6},
		{"single tile", 10, 10, 32, 1},
		{"one pixel tiles", 3, 2, 1, 6},
		{"empty image", 0, 10, 32, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			// Tiles cover every pixel exactly once
			covered := make(map[image.Point]int)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Tile %d has ID %d", i, tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[image.Pt(x, y)]++
					}
				}
			}
			if len(covered) != tt.width*max(tt.height, 0) && tt.expectedTiles > 0 {
				t.Errorf("Expected %d covered pixels, got %d", tt.width*tt.height, len(covered))
			}
			for p, n := range covered {
				if n != 1 {
					t.Errorf("Pixel %v covered %d times", p, n)
				}
			}
		})
	}
}
