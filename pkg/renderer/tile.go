package renderer

import (
	"image"
)

// Tile represents a rectangular region of the image rendered as one task
type Tile struct {
	ID     int             // Unique tile identifier, row-major
	Bounds image.Rectangle // Pixel bounds of this tile
}

// NewTileGrid splits a width x height image into tiles of at most tileSize
// pixels per side. Edge tiles are clipped to the image.
func NewTileGrid(width, height, tileSize int) []*Tile {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil
	}

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize
	tiles := make([]*Tile, 0, tilesX*tilesY)

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0, y0 := tx*tileSize, ty*tileSize
			x1, y1 := min(x0+tileSize, width), min(y0+tileSize, height)
			tiles = append(tiles, &Tile{
				ID:     len(tiles),
				Bounds: image.Rect(x0, y0, x1, y1),
			})
		}
	}
	return tiles
}
