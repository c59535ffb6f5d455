// Package leveldata parses TMX test courses. It has no dependencies on
// ebitengine, donburi, or resolv. Pure data only.
package leveldata

// Course holds the collision-relevant data parsed from a TMX file.
type Course struct {
	Name       string
	SolidRects []SolidRect
	Spawn      SpawnPoint
	MapWidth   int
	MapHeight  int
	TileWidth  int
	TileHeight int
}

// SolidRect represents a solid collision area in pixels.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents the player spawn location in pixels.
type SpawnPoint struct {
	X, Y float64
}
