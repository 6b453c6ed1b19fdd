package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI holds the ebitenui interface for the sound settings screen
type SettingsUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnChange func() // fired after every edit, e.g. to play a preview blip
	OnGoBack func()

	volumeLabel *widget.Label
	soundButton *widget.Button

	titleFace  text.Face
	normalFace text.Face

	initialized bool
}

// NewSettingsUI creates the settings screen
func NewSettingsUI(onChange, onGoBack func()) *SettingsUI {
	sui := &SettingsUI{
		OnChange: onChange,
		OnGoBack: onGoBack,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.SettingsScreen.TitleSize,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.SettingsScreen.TextSize,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.SettingsScreen.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.SettingsScreen.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: cfg.SettingsScreen.TitleColor,
		}),
	))

	panel.AddChild(sui.buildSoundRow())
	panel.AddChild(sui.buildVolumeRow())

	panel.AddChild(sui.button("Back", func() {
		if sui.OnGoBack != nil {
			sui.OnGoBack()
		}
	}))

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) buildSoundRow() *widget.Container {
	row := sui.row()

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Sound:", &sui.normalFace, &widget.LabelColor{
			Idle: cfg.SettingsScreen.TextColor,
		}),
	))

	sui.soundButton = sui.button(soundLabel(systems.CurrentSettings().SoundOn), func() {
		systems.ToggleSound()
		sui.changed()
	})
	row.AddChild(sui.soundButton)
	return row
}

func (sui *SettingsUI) buildVolumeRow() *widget.Container {
	row := sui.row()

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Volume:", &sui.normalFace, &widget.LabelColor{
			Idle: cfg.SettingsScreen.TextColor,
		}),
	))

	row.AddChild(sui.button("-", func() {
		systems.AdjustVolume(-1)
		sui.changed()
	}))

	sui.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text(volumeLabel(systems.CurrentSettings().Volume), &sui.normalFace, &widget.LabelColor{
			Idle: cfg.SettingsScreen.ValueColor,
		}),
	)
	row.AddChild(sui.volumeLabel)

	row.AddChild(sui.button("+", func() {
		systems.AdjustVolume(1)
		sui.changed()
	}))
	return row
}

func (sui *SettingsUI) row() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)
}

func (sui *SettingsUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.SettingsScreen.ButtonWidth, cfg.SettingsScreen.ButtonHeight),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SettingsUI) changed() {
	sui.UpdateUI()
	if sui.OnChange != nil {
		sui.OnChange()
	}
}

func buttonImage() *widget.ButtonImage {
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

// UpdateUI refreshes the widgets from the current settings
func (sui *SettingsUI) UpdateUI() {
	settings := systems.CurrentSettings()
	if sui.volumeLabel != nil {
		sui.volumeLabel.Label = volumeLabel(settings.Volume)
	}
	if sui.soundButton != nil {
		if textWidget := sui.soundButton.Text(); textWidget != nil {
			textWidget.Label = soundLabel(settings.SoundOn)
		}
	}
}

// Update runs the ebitenui frame
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}

func soundLabel(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

func volumeLabel(volume int) string {
	return fmt.Sprintf("%3d%%", volume)
}
