package common

const (
	ScreenWidth  = 640
	ScreenHeight = 360

	// TileSize is the edge of one level grid cell in pixels.
	TileSize = 16

	MaxSprites    = 32
	SoundChannels = 4
)

// Direction is the facing or travel direction of an actor.
type Direction uint8

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}
