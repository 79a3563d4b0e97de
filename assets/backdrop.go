package assets

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/sunnyland/common"
)

// BackdropWidth is the repeat period of the background panorama.
const BackdropWidth = 512

// BuildBackdrop draws the background panorama: clouds near the top, far
// hills in the band and near bushes at the bottom. Transparent pixels show
// the background colour.
func BuildBackdrop() *ebiten.Image {
	img := ebiten.NewImage(BackdropWidth, common.ScreenHeight)

	for cx := 0; cx < BackdropWidth; cx += 128 {
		for i := range 3 {
			x := float32(cx + 20 + i*18)
			y := float32(40 + (cx/128%2)*24)
			vector.DrawFilledCircle(img, x, y, 14, colornames.White, true)
		}
	}

	// hills are a sum of sines whose periods divide the panorama width
	hill := func(x int, base, amp float64, k int) float64 {
		t := 2 * math.Pi * float64(x) / BackdropWidth
		return base - amp*math.Sin(float64(k)*t) - amp/2*math.Sin(float64(3*k)*t+1)
	}
	for x := range BackdropWidth {
		top := hill(x, 190, 22, 2)
		vector.DrawFilledRect(img, float32(x), float32(top), 1, float32(common.ScreenHeight)-float32(top), colornames.Mediumseagreen, false)
	}
	for x := range BackdropWidth {
		top := hill(x, 270, 12, 5)
		vector.DrawFilledRect(img, float32(x), float32(top), 1, float32(common.ScreenHeight)-float32(top), colornames.Seagreen, false)
	}
	return img
}
