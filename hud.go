package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// HUD shows the countdown centred in the top band.
type HUD struct {
	ui    *ebitenui.UI
	badge *widget.Container
	time  *widget.Text
}

func NewHUD() *HUD {
	h := &HUD{}
	h.time = widget.NewText(
		widget.TextOpts.Text(formatTime(0), &uiFace, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	)

	h.badge = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 0x90})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 3, Bottom: 3, Left: 6, Right: 6}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	h.badge.AddChild(h.time)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 8}),
		)),
	)
	root.AddChild(h.badge)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

func (h *HUD) UpdateTime(t int) {
	h.time.Label = formatTime(t)
}

func (h *HUD) Update()                   { h.ui.Update() }
func (h *HUD) Draw(screen *ebiten.Image) { h.ui.Draw(screen) }

func formatTime(t int) string {
	return fmt.Sprintf("%03d", max(0, t))
}
