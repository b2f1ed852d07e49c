// Package managertest provides a scripted manager.Runner for tests.
package managertest

import (
	"context"
	"strings"
	"sync"
)

type Call struct {
	Name string
	Args []string
}

func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

type Response struct {
	Out []byte
	Err error
}

// Runner records every call and answers from Responses, keyed by the full
// command line ("hyprctl -j monitors"). Unknown commands succeed with no output.
type Runner struct {
	mu        sync.Mutex
	Responses map[string]Response
	Calls     []Call
}

func NewRunner() *Runner {
	return &Runner{Responses: map[string]Response{}}
}

func (r *Runner) On(cmdline string, out string, err error) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Responses[cmdline] = Response{Out: []byte(out), Err: err}
	return r
}

func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := Call{Name: name, Args: append([]string(nil), args...)}
	r.Calls = append(r.Calls, call)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp := r.Responses[call.String()]
	return resp.Out, resp.Err
}

// Commands returns the recorded calls as command lines.
func (r *Runner) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmds := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		cmds = append(cmds, c.String())
	}
	return cmds
}
