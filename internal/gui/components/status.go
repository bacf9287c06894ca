package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	dbLabel     *widget.Label
}

func NewStatusBar(dbPath string) *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	dbLabel := widget.NewLabel(dbPath)
	dbLabel.Truncation = fyne.TextTruncateEllipsis

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		dbLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		dbLabel:     dbLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}
