package levels

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

var (
	ErrTileLayerNotFound   = errors.New("levels: tile layer not found")
	ErrObjectLayerNotFound = errors.New("levels: object layer not found")
	ErrMalformedLayer      = errors.New("levels: malformed tile layer")
)

// LoadOptions selects the layers of a TMX file and how to decode them.
type LoadOptions struct {
	// TileLayer is the name of the collision/foreground tile layer.
	TileLayer string
	// ObjectLayer is the name of the object group holding spawn points.
	ObjectLayer string
	// FirstGID is subtracted from an object's gid to get its item kind.
	FirstGID int
	// Classes maps tileset-local tile ids to collision classes. Ids not
	// listed are decorative and read as Empty.
	Classes map[TileType][]uint32
}

// ObjectSpec is a spawn point declared in the level's object layer.
type ObjectSpec struct {
	Type int
	X, Y int
}

// Level is a loaded level: its collision grid and spawn points.
type Level struct {
	Name    string
	Tiles   *TileMap
	Objects []ObjectSpec
}

// Load parses a Tiled map from fsys. A missing layer is fatal: no partial
// level is returned.
func Load(fsys fs.FS, name string, opts LoadOptions) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	m, err := tiled.LoadReader(path.Dir(name), bytes.NewReader(data), tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}

	tiles, err := decodeTileLayer(m, opts)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	objects, err := decodeObjects(m, opts)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}

	return &Level{Name: name, Tiles: tiles, Objects: objects}, nil
}

func decodeTileLayer(m *tiled.Map, opts LoadOptions) (*TileMap, error) {
	var layer *tiled.Layer
	for _, l := range m.Layers {
		if l != nil && l.Name == opts.TileLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%w: %q", ErrTileLayerNotFound, opts.TileLayer)
	}
	if len(layer.Tiles) != m.Width*m.Height {
		return nil, fmt.Errorf("%w: %q has %d tiles, want %d", ErrMalformedLayer, layer.Name, len(layer.Tiles), m.Width*m.Height)
	}

	classes := make(map[uint32]TileType)
	for t, ids := range opts.Classes {
		for _, id := range ids {
			classes[id] = t
		}
	}

	tm := NewTileMap(m.Width, m.Height)
	for i, lt := range layer.Tiles {
		if lt == nil || lt.IsNil() {
			continue
		}
		row, col := i/m.Width, i%m.Width
		tm.setCell(row, col, classes[lt.ID], lt.ID+1)
	}
	return tm, nil
}

func decodeObjects(m *tiled.Map, opts LoadOptions) ([]ObjectSpec, error) {
	for _, group := range m.ObjectGroups {
		if group == nil || group.Name != opts.ObjectLayer {
			continue
		}
		out := make([]ObjectSpec, 0, len(group.Objects))
		for _, obj := range group.Objects {
			if obj == nil || obj.GID == 0 {
				continue
			}
			out = append(out, ObjectSpec{
				Type: int(obj.GID) - opts.FirstGID,
				X:    int(obj.X),
				Y:    int(obj.Y),
			})
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrObjectLayerNotFound, opts.ObjectLayer)
}
