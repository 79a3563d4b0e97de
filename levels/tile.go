package levels

import (
	"fmt"
	"strings"
)

// TileType is the collision class of a level cell.
type TileType uint8

const (
	Empty TileType = iota
	Floor
	Gem
	Wall
	SlopeUp
	SlopeDown
	InnerSlopeUp
	InnerSlopeDown
)

var tileTypeNames = [...]string{
	Empty:          "empty",
	Floor:          "floor",
	Gem:            "gem",
	Wall:           "wall",
	SlopeUp:        "slope_up",
	SlopeDown:      "slope_down",
	InnerSlopeUp:   "inner_slope_up",
	InnerSlopeDown: "inner_slope_down",
}

func (t TileType) String() string {
	if int(t) < len(tileTypeNames) {
		return tileTypeNames[t]
	}
	return fmt.Sprintf("TileType(%d)", t)
}

// ParseTileType maps a class name used in level specs to its TileType.
func ParseTileType(name string) (TileType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range tileTypeNames {
		if s == n {
			return TileType(i), nil
		}
	}
	return Empty, fmt.Errorf("levels: unknown tile class %q", name)
}

// TileInfo is the result of probing the grid at a pixel.
type TileInfo struct {
	Type TileType
	Row  int
	Col  int
	// XOffset and YOffset are the pixel position inside the cell, 0..TileSize-1.
	XOffset int
	YOffset int
}
