package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PanelUI is the ebitenui control strip along the bottom of the screen.
type PanelUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnNextPreset func()
	OnBurst      func()
	OnStream     func()
	OnPause      func()
	OnDebug      func()

	presetLabel *widget.Label

	normalFace text.Face
}

// NewPanelUI builds the control panel. Callbacks may be nil.
func NewPanelUI() *PanelUI {
	p := &PanelUI{}
	p.loadFonts()
	p.buildUI()
	return p
}

func (p *PanelUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	p.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}

func (p *PanelUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	strip := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	strip.AddChild(p.button("preset", func() {
		if p.OnNextPreset != nil {
			p.OnNextPreset()
		}
	}))
	strip.AddChild(p.button("burst", func() {
		if p.OnBurst != nil {
			p.OnBurst()
		}
	}))
	strip.AddChild(p.button("stream", func() {
		if p.OnStream != nil {
			p.OnStream()
		}
	}))
	strip.AddChild(p.button("pause", func() {
		if p.OnPause != nil {
			p.OnPause()
		}
	}))
	strip.AddChild(p.button("bodies", func() {
		if p.OnDebug != nil {
			p.OnDebug()
		}
	}))

	p.presetLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &p.normalFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 230, 255},
		}),
	)
	strip.AddChild(p.presetLabel)

	rootContainer.AddChild(strip)
	p.UI = &ebitenui.UI{Container: rootContainer}
}

func (p *PanelUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(56, 18)),
		widget.ButtonOpts.Image(p.buttonImage()),
		widget.ButtonOpts.Text(label, &p.normalFace, &widget.ButtonTextColor{
			Idle: color.RGBA{230, 230, 240, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (p *PanelUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetPresetName updates the preset readout.
func (p *PanelUI) SetPresetName(name string) {
	p.presetLabel.Label = name
}
