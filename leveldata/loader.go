package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	solidLayerName  = "solids"
	spawnObjectName = "PlayerSpawn"
)

var ErrNoSpawn = errors.New("course has no PlayerSpawn object")

// LoadCourse parses a TMX file from fsys. Solid tiles in each row are merged
// into runs so a floor becomes one rectangle instead of one per tile.
func LoadCourse(fsys fs.FS, tmxPath string) (*Course, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	course := &Course{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != solidLayerName {
			continue
		}
		course.SolidRects = solidRuns(layer, levelMap.Width, levelMap.Height,
			float64(levelMap.TileWidth), float64(levelMap.TileHeight))
		break
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			if og.Name != spawnObjectName && o.Name != spawnObjectName {
				continue
			}
			course.Spawn = SpawnPoint{X: o.X, Y: o.Y}
			spawnFound = true
			break
		}
		if spawnFound {
			break
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	return course, nil
}

func solidRuns(layer *tiled.Layer, width, height int, tileW, tileH float64) []SolidRect {
	var rects []SolidRect
	for y := 0; y < height; y++ {
		runStart := -1
		for x := 0; x <= width; x++ {
			solid := x < width && !layer.Tiles[y*width+x].IsNil()
			switch {
			case solid && runStart < 0:
				runStart = x
			case !solid && runStart >= 0:
				rects = append(rects, SolidRect{
					X: float64(runStart) * tileW,
					Y: float64(y) * tileH,
					W: float64(x-runStart) * tileW,
					H: tileH,
				})
				runStart = -1
			}
		}
	}
	return rects
}
