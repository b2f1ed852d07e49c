package selector

import (
	"context"
	"errors"

	"github.com/hoppxi/hyprwall/internal/wallpaper"
	"github.com/ncruces/zenity"
)

const title = "Hyprpaper Wallpaper Setter"

// Zenity implements Dialogs with native dialogs.
type Zenity struct{}

func (Zenity) Form(text string) (string, Action, error) {
	out, err := zenity.Entry("Wallpaper image path:",
		zenity.Title(title),
		zenity.EntryText(text),
		zenity.OKLabel("Set wallpaper"),
		zenity.ExtraButton("Browse..."),
		zenity.CancelLabel("Close"),
		zenity.Width(600),
	)

	switch {
	case err == nil:
		return out, ActionSet, nil
	case errors.Is(err, zenity.ErrExtraButton):
		return out, ActionBrowse, nil
	case errors.Is(err, zenity.ErrCanceled):
		return out, ActionClose, nil
	}
	return "", ActionClose, err
}

func (Zenity) SelectFile(ctx context.Context) (string, bool, error) {
	return wallpaper.SelectFile(ctx)
}

func (Zenity) Info(text string) error {
	return zenity.Info(text, zenity.Title(title), zenity.InfoIcon)
}

func (Zenity) Error(text string) error {
	return zenity.Error(text, zenity.Title(title), zenity.ErrorIcon)
}
