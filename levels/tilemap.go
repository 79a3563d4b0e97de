package levels

import "github.com/milk9111/sunnyland/common"

// TileMap is the collision grid of a level. Cells are stored row-major.
type TileMap struct {
	cols, rows int
	types      []TileType
	ids        []uint32
}

func NewTileMap(cols, rows int) *TileMap {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &TileMap{
		cols:  cols,
		rows:  rows,
		types: make([]TileType, cols*rows),
		ids:   make([]uint32, cols*rows),
	}
}

func (m *TileMap) Cols() int { return m.cols }
func (m *TileMap) Rows() int { return m.rows }

// Width returns the map width in pixels.
func (m *TileMap) Width() int { return m.cols * common.TileSize }

// Height returns the map height in pixels.
func (m *TileMap) Height() int { return m.rows * common.TileSize }

// Tile probes the cell containing the pixel. Pixels outside the grid read as Empty.
func (m *TileMap) Tile(px, py int) TileInfo {
	col, xoff := floorDiv(px, common.TileSize)
	row, yoff := floorDiv(py, common.TileSize)
	return TileInfo{
		Type:    m.Type(row, col),
		Row:     row,
		Col:     col,
		XOffset: xoff,
		YOffset: yoff,
	}
}

// Type returns the class of a cell, Empty when out of range.
func (m *TileMap) Type(row, col int) TileType {
	if !m.inside(row, col) {
		return Empty
	}
	return m.types[row*m.cols+col]
}

// TileID returns the tileset-local id of a cell plus one, 0 meaning no tile.
func (m *TileMap) TileID(row, col int) uint32 {
	if !m.inside(row, col) {
		return 0
	}
	return m.ids[row*m.cols+col]
}

// SetTile changes the class of a cell. Clearing to Empty also drops its graphic.
func (m *TileMap) SetTile(row, col int, t TileType) {
	if !m.inside(row, col) {
		return
	}
	idx := row*m.cols + col
	m.types[idx] = t
	if t == Empty {
		m.ids[idx] = 0
	}
}

func (m *TileMap) setCell(row, col int, t TileType, id uint32) {
	if !m.inside(row, col) {
		return
	}
	idx := row*m.cols + col
	m.types[idx] = t
	m.ids[idx] = id
}

func (m *TileMap) inside(row, col int) bool {
	return m != nil && row >= 0 && col >= 0 && row < m.rows && col < m.cols
}

func floorDiv(v, d int) (q, r int) {
	q = v / d
	r = v % d
	if r < 0 {
		q--
		r += d
	}
	return q, r
}
