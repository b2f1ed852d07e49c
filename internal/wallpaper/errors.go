package wallpaper

import (
	"errors"
	"fmt"
)

// Kind says which step of setting a wallpaper failed.
type Kind int

const (
	Validation Kind = iota + 1
	Query
	Write
	Restart
	Chain
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation failed"
	case Query:
		return "monitor query failed"
	case Write:
		return "config write failed"
	case Restart:
		return "daemon restart failed"
	case Chain:
		return "hyprlock sync failed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	ErrNotExist   = errors.New("wallpaper file does not exist")
	ErrNotRegular = errors.New("wallpaper path is not a regular file")
	ErrNoPreload  = errors.New("no preload line in hyprpaper config")
	ErrNoImages   = errors.New("no wallpaper images found")
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind
	}
	return 0
}
