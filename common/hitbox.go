package common

import "github.com/jakecoffman/cp"

// Hitbox is an axis-aligned rectangle that follows its owner's position.
type Hitbox struct {
	Width, Height float64

	bb cp.BB
}

func NewHitbox(x, y, w, h float64) *Hitbox {
	hb := &Hitbox{Width: w, Height: h}
	hb.Move(x, y)
	return hb
}

// Move places the top-left corner at x, y keeping the size.
func (h *Hitbox) Move(x, y float64) {
	if h == nil {
		return
	}
	h.bb = cp.BB{L: x, B: y, R: x + h.Width, T: y + h.Height}
}

// Contains reports whether the point lies inside the box, edges included.
func (h *Hitbox) Contains(x, y float64) bool {
	if h == nil {
		return false
	}
	return h.bb.ContainsVect(cp.Vector{X: x, Y: y})
}

// Bounds returns the left, top, right and bottom edges.
func (h *Hitbox) Bounds() (x1, y1, x2, y2 float64) {
	if h == nil {
		return 0, 0, 0, 0
	}
	return h.bb.L, h.bb.B, h.bb.R, h.bb.T
}
