// Package selector is the "pick an image, set it" form.
package selector

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/hoppxi/hyprwall/internal/wallpaper"
)

type Action int

const (
	ActionClose Action = iota
	ActionSet
	ActionBrowse
)

type Dialogs interface {
	// Form shows the path entry prefilled with text and returns what the
	// user typed along with the button they pressed.
	Form(text string) (string, Action, error)
	SelectFile(ctx context.Context) (string, bool, error)
	Info(text string) error
	Error(text string) error
}

type Setter interface {
	Set(ctx context.Context, path string) ([]string, error)
}

// App is the form state shared by the handlers: the entry text and the
// monitors the last set was applied to.
type App struct {
	Path     string
	Displays []string

	dialogs Dialogs
	setter  Setter
}

func New(dialogs Dialogs, setter Setter) *App {
	return &App{dialogs: dialogs, setter: setter}
}

// Run shows the form until the user closes it.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		text, action, err := a.dialogs.Form(a.Path)
		if err != nil {
			return fmt.Errorf("failed to show form: %w", err)
		}

		switch action {
		case ActionClose:
			return nil
		case ActionBrowse:
			if text = strings.TrimSpace(text); text != "" {
				a.Path = text
			}
			a.Browse(ctx)
		case ActionSet:
			a.Path = strings.TrimSpace(text)
			a.Apply(ctx)
		}
	}
}

// Browse replaces Path with the chosen file. Cancelling keeps Path.
func (a *App) Browse(ctx context.Context) {
	file, ok, err := a.dialogs.SelectFile(ctx)
	if err != nil {
		a.showError(fmt.Sprintf("Could not open the file chooser: %v", err))
		return
	}
	if ok {
		a.Path = file
	}
}

func (a *App) Apply(ctx context.Context) bool {
	displays, err := a.setter.Set(ctx, a.Path)
	if displays != nil {
		a.Displays = displays
	}

	if err != nil {
		log.Printf("Set wallpaper: %v", err)
		a.showError(Message(err))
		return false
	}

	a.showInfo(fmt.Sprintf("Wallpaper set on %s and hyprlock configuration updated.", strings.Join(a.Displays, ", ")))
	return true
}

// Message turns a set failure into the text shown to the user.
func Message(err error) string {
	var werr *wallpaper.Error
	if !errors.As(err, &werr) {
		return fmt.Sprintf("Failed to set wallpaper: %v", err)
	}

	switch werr.Kind {
	case wallpaper.Validation:
		if errors.Is(err, wallpaper.ErrNotExist) {
			return "The selected file does not exist."
		}
		return fmt.Sprintf("The selected path cannot be used: %v", werr.Err)
	case wallpaper.Query:
		return fmt.Sprintf("Could not get monitor information: %v", werr.Err)
	case wallpaper.Write:
		return fmt.Sprintf("Could not write the hyprpaper configuration: %v", werr.Err)
	case wallpaper.Restart:
		return fmt.Sprintf("Configuration written, but hyprpaper could not be restarted: %v", werr.Err)
	case wallpaper.Chain:
		return fmt.Sprintf("Wallpaper set, but updating the hyprlock configuration failed: %v", werr.Err)
	}
	return werr.Error()
}

func (a *App) showInfo(text string) {
	if err := a.dialogs.Info(text); err != nil {
		log.Printf("Info dialog: %v", err)
	}
}

func (a *App) showError(text string) {
	if err := a.dialogs.Error(text); err != nil {
		log.Printf("Error dialog: %v", err)
	}
}
