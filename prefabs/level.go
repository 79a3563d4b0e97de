package prefabs

import (
	"fmt"

	"github.com/milk9111/sunnyland/levels"
)

// LoadOptions converts the level spec into loader options, resolving class
// names to tile types.
func (l LevelSpec) LoadOptions() (levels.LoadOptions, error) {
	classes := make(map[levels.TileType][]uint32, len(l.Classes))
	for name, ids := range l.Classes {
		t, err := levels.ParseTileType(name)
		if err != nil {
			return levels.LoadOptions{}, fmt.Errorf("prefabs: level %s: %w", l.Name, err)
		}
		classes[t] = append(classes[t], ids...)
	}
	return levels.LoadOptions{
		TileLayer:   l.TileLayer,
		ObjectLayer: l.ObjectLayer,
		FirstGID:    l.FirstGID,
		Classes:     classes,
	}, nil
}

// ItemKind returns the actor kind for a decoded object type, or "" when the
// level declares none.
func (l LevelSpec) ItemKind(typ int) string {
	if typ < 0 || typ >= len(l.Items) {
		return ""
	}
	return l.Items[typ]
}
