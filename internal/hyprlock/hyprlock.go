// Package hyprlock keeps the background path of hyprlock.conf in sync.
//
// Only lines assigning a "path" key are touched. Every other line, including
// its terminator, is written back exactly as read.
package hyprlock

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// pathLine matches "path" followed by optional blanks and "=", after optional
// leading blanks. It is deliberately loose: it does not check which section
// the line lives in, so a label or image block with its own path key is
// rewritten as well.
var pathLine = regexp.MustCompile(`^\s*path\s*=`)

// State tracks how far a Patch call got.
type State int

const (
	Idle State = iota
	Reading
	Scanning
	Rewriting
	Saved
	NoMatchFound
	ReadFailed
	WriteFailed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Reading:
		return "reading"
	case Scanning:
		return "scanning"
	case Rewriting:
		return "rewriting"
	case Saved:
		return "saved"
	case NoMatchFound:
		return "no match found"
	case ReadFailed:
		return "read failed"
	case WriteFailed:
		return "write failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Outcome struct {
	State State
	// Matched holds the zero-based indices of rewritten lines.
	Matched []int
	Lines   int
}

type PatchError struct {
	State State
	File  string
	Err   error
}

func (e *PatchError) Error() string {
	if e.State == ReadFailed {
		return fmt.Sprintf("failed to read %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("failed to write %s: %v", e.File, e.Err)
}

func (e *PatchError) Unwrap() error {
	return e.Err
}

// FormatPath renders the replacement line.
func FormatPath(path string) string {
	return "    path = " + path + "\n"
}

func IsPathLine(line string) bool {
	return pathLine.MatchString(line)
}

// SplitLines splits data after each "\n". A final line without a terminator is
// kept as is, so joining the result reproduces data.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// PatchLines returns a copy of lines with every path line replaced, and the
// indices that were replaced.
func PatchLines(lines []string, path string) ([]string, []int) {
	out := make([]string, len(lines))
	var matched []int

	for i, line := range lines {
		if IsPathLine(line) {
			out[i] = FormatPath(path)
			matched = append(matched, i)
			continue
		}
		out[i] = line
	}

	return out, matched
}

// Patch rewrites the path lines of file to point at path. With no path line
// the file is left untouched and the outcome is NoMatchFound.
func Patch(file, path string) (Outcome, error) {
	outcome := Outcome{State: Reading}

	data, err := os.ReadFile(file)
	if err != nil {
		outcome.State = ReadFailed
		return outcome, &PatchError{State: ReadFailed, File: file, Err: err}
	}

	outcome.State = Scanning
	lines := SplitLines(data)
	outcome.Lines = len(lines)

	patched, matched := PatchLines(lines, path)
	outcome.Matched = matched

	if len(matched) == 0 {
		outcome.State = NoMatchFound
		return outcome, nil
	}

	for _, i := range matched {
		log.Printf("Found path line %d: %s", i+1, strings.TrimSpace(lines[i]))
	}

	outcome.State = Rewriting
	if err := writeFile(file, []byte(strings.Join(patched, ""))); err != nil {
		outcome.State = WriteFailed
		return outcome, &PatchError{State: WriteFailed, File: file, Err: err}
	}

	outcome.State = Saved
	return outcome, nil
}

// writeFile replaces file through a temporary sibling and a rename, so readers
// see either the old or the new content. Symlinks are followed so dotfile
// managers keep their links.
func writeFile(file string, data []byte) error {
	target, err := filepath.EvalSymlinks(file)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), target)
}
