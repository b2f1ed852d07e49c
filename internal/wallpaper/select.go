package wallpaper

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// SelectFile opens the desktop file chooser filtered to images. ok is false
// when the user cancels.
func SelectFile(ctx context.Context) (file string, ok bool, err error) {
	patterns := make([]string, 0, len(ImageExtensions))
	for _, ext := range ImageExtensions {
		patterns = append(patterns, "*."+ext)
	}

	file, err = zenity.SelectFile(
		zenity.Context(ctx),
		zenity.Title("Select wallpaper"),
		zenity.FileFilters{
			{Name: "Images", Patterns: patterns, CaseFold: true},
		},
	)

	if errors.Is(err, zenity.ErrCanceled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to open file chooser: %w", err)
	}

	return file, true, nil
}
