// Package hyprpaper reads and writes hyprpaper.conf and restarts the daemon.
//
// The file is owned by hyprwall: every write regenerates it as
//
//	preload=<path>
//	wallpaper=<monitor>, <path>
//
// with one wallpaper line per monitor.
package hyprpaper

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	PreloadKey   = "preload"
	WallpaperKey = "wallpaper"
)

func Render(path string, monitors []string) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "%s=%s\n", PreloadKey, path)
	for _, m := range monitors {
		fmt.Fprintf(&b, "%s=%s, %s\n", WallpaperKey, m, path)
	}

	return []byte(b.String())
}

// Write truncates file and writes the rendered config into it. The write is
// not atomic; hyprpaper only reads the file on startup.
func Write(file, path string, monitors []string) error {
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", file, err)
	}

	if err := os.WriteFile(file, Render(path, monitors), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}

	return nil
}

// ReadPreload returns the value of the first preload line in file. found is
// false when the file has no preload line; err is only set for I/O failures.
func ReadPreload(file string) (path string, found bool, err error) {
	f, err := os.Open(file)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		if value, ok := ParsePreload(sc.Text()); ok {
			return value, true, nil
		}
	}

	if err := sc.Err(); err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", file, err)
	}

	return "", false, nil
}

// ParsePreload matches lines that start with "preload" followed, after
// optional blanks, by "=". Everything after the first "=" is the value.
func ParsePreload(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, PreloadKey)
	if !ok {
		return "", false
	}

	value, ok := strings.CutPrefix(strings.TrimLeft(rest, " \t"), "=")
	if !ok {
		return "", false
	}

	return strings.TrimSpace(value), true
}
