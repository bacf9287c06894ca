package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Notifier surfaces results as modal popups
type Notifier interface {
	ShowInfo(title, message string)
	ShowWarning(message string)
	ShowError(err error)
}

type DialogNotifier struct {
	window fyne.Window
}

func NewDialogNotifier(window fyne.Window) *DialogNotifier {
	return &DialogNotifier{window: window}
}

func (n *DialogNotifier) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, n.window)
}

func (n *DialogNotifier) ShowWarning(message string) {
	dialog.ShowInformation("Warning", message, n.window)
}

func (n *DialogNotifier) ShowError(err error) {
	if err == nil {
		err = errors.New("unknown error")
	}
	dialog.ShowError(err, n.window)
}
