package manager

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"syscall"
)

// Runner runs an external command to completion and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type ExecRunner struct{}

// Exec is the Runner backed by os/exec.
var Exec Runner = ExecRunner{}

func NewCmd(ctx context.Context, command string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, command, args...)

	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return cmd
}

// Run blocks until the command exits. A non-zero exit is returned as an error
// wrapping *exec.ExitError, with the command's stderr appended when present.
// On success any stderr output is logged.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := NewCmd(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Printf("Running: %s", strings.TrimSpace(name+" "+strings.Join(args, " ")))

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return stdout.Bytes(), fmt.Errorf("%s: %w", name, err)
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		log.Printf("%s: %s", name, msg)
	}

	return stdout.Bytes(), nil
}
