package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// RoomInfo is one selectable room row.
type RoomInfo struct {
	Title   string
	Cleared bool
	Locked  bool
}

// RoomSelectUI holds the ebitenui interface for the title screen
type RoomSelectUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay       func(index int)
	OnNextVolume func() float64
	OnFullscreen func() bool
	OnQuit       func()

	// Widget references for updates
	volumeLabel      *widget.Label
	fullscreenButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewRoomSelectUI creates the title screen with one button per room.
func NewRoomSelectUI(rooms []RoomInfo, volume float64, fullscreen bool, onPlay func(int), onNextVolume func() float64, onFullscreen func() bool, onQuit func()) *RoomSelectUI {
	rui := &RoomSelectUI{
		OnPlay:       onPlay,
		OnNextVolume: onNextVolume,
		OnFullscreen: onFullscreen,
		OnQuit:       onQuit,
	}

	rui.loadFonts()
	rui.buildUI(rooms, volume, fullscreen)

	return rui
}

func (rui *RoomSelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	rui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	rui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	rui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}

func (rui *RoomSelectUI) buildUI(rooms []RoomInfo, volume float64, fullscreen bool) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SHATTERBOX", &rui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	taglineLabel := widget.NewLabel(
		widget.LabelOpts.Text("Clear every room. Mind the glass.", &rui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{170, 175, 190, 255},
		}),
	)
	contentContainer.AddChild(taglineLabel)

	contentContainer.AddChild(rui.buildRoomsContainer(rooms))
	contentContainer.AddChild(rui.buildSettingsContainer(volume, fullscreen))

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 26)),
		widget.ButtonOpts.Image(rui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &rui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnQuit != nil {
				rui.OnQuit()
			}
		}),
	)
	contentContainer.AddChild(quitButton)

	rootContainer.AddChild(contentContainer)

	rui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (rui *RoomSelectUI) buildRoomsContainer(rooms []RoomInfo) *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	for i, room := range rooms {
		idx := i // Capture for closure
		label := fmt.Sprintf("%d. %s", i+1, room.Title)
		if room.Cleared {
			label += "  (cleared)"
		} else if room.Locked {
			label = fmt.Sprintf("%d. ???", i+1)
		}

		roomButton := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 26)),
			widget.ButtonOpts.Image(rui.buttonImage()),
			widget.ButtonOpts.Text(label, &rui.normalFace, &widget.ButtonTextColor{
				Idle:     color.RGBA{255, 255, 255, 255},
				Hover:    color.RGBA{255, 255, 200, 255},
				Pressed:  color.RGBA{200, 200, 200, 255},
				Disabled: color.RGBA{100, 100, 100, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if rui.OnPlay != nil {
					rui.OnPlay(idx)
				}
			}),
		)
		roomButton.GetWidget().Disabled = room.Locked
		container.AddChild(roomButton)
	}

	return container
}

func (rui *RoomSelectUI) buildSettingsContainer(volume float64, fullscreen bool) *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	soundLabel := widget.NewLabel(
		widget.LabelOpts.Text("Sound:", &rui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	container.AddChild(soundLabel)

	rui.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text(volumeText(volume), &rui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	container.AddChild(rui.volumeLabel)

	volumeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(50, 18)),
		widget.ButtonOpts.Image(rui.buttonImage()),
		widget.ButtonOpts.Text("Change", &rui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnNextVolume != nil {
				rui.volumeLabel.Label = volumeText(rui.OnNextVolume())
			}
		}),
	)
	container.AddChild(volumeButton)

	rui.fullscreenButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 18)),
		widget.ButtonOpts.Image(rui.buttonImage()),
		widget.ButtonOpts.Text(fullscreenText(fullscreen), &rui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnFullscreen == nil {
				return
			}
			on := rui.OnFullscreen()
			if textWidget := rui.fullscreenButton.Text(); textWidget != nil {
				textWidget.Label = fullscreenText(on)
			}
		}),
	)
	container.AddChild(rui.fullscreenButton)

	return container
}

func (rui *RoomSelectUI) buttonImage() *widget.ButtonImage {
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

// Update runs the ebitenui event loop for one frame.
func (rui *RoomSelectUI) Update() {
	rui.UI.Update()
}

func volumeText(v float64) string {
	return fmt.Sprintf("%d%%", int(v*100+0.5))
}

func fullscreenText(on bool) string {
	if on {
		return "Fullscreen: On"
	}
	return "Fullscreen: Off"
}
