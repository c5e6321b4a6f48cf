// Package fake provides scripted stand-ins for the process collaborators so
// the tool wrappers can be exercised without root or wireless hardware.
package fake

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
)

var _ dogewifi.Executor = &Executor{}
var _ dogewifi.ProcessKiller = &Killer{}

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

func (c Call) String() string {
	return dogewifi.CommandLine(c.Name, c.Args...)
}

// Executor answers commands from Responses, keyed by the full command
// line. Unknown commands exit 127. OnExec, when set, runs before the
// response is returned.
type Executor struct {
	mu        sync.Mutex
	Responses map[string]dogewifi.CommandOutput
	Errors    map[string]error
	OnExec    func(call Call)
	calls     []Call
}

func NewExecutor() *Executor {
	return &Executor{
		Responses: map[string]dogewifi.CommandOutput{},
		Errors:    map[string]error{},
	}
}

// Stdout scripts a successful command.
func (e *Executor) Stdout(cmdline, stdout string) *Executor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Responses[cmdline] = dogewifi.CommandOutput{Stdout: stdout}
	return e
}

// Fail scripts a command exiting with code and stderr.
func (e *Executor) Fail(cmdline string, code int, stderr string) *Executor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Responses[cmdline] = dogewifi.CommandOutput{ExitCode: code, Stderr: stderr}
	return e
}

func (e *Executor) Exec(ctx context.Context, name string, args ...string) (dogewifi.CommandOutput, error) {
	call := Call{Name: name, Args: append([]string(nil), args...)}

	e.mu.Lock()
	e.calls = append(e.calls, call)
	hook := e.OnExec
	e.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if err := ctx.Err(); err != nil {
		return dogewifi.CommandOutput{}, err
	}

	e.mu.Lock()
	out, ok := e.Responses[call.String()]
	err := e.Errors[call.String()]
	e.mu.Unlock()

	if err != nil {
		return dogewifi.CommandOutput{}, err
	}
	if !ok {
		return dogewifi.CommandOutput{ExitCode: 127, Stderr: fmt.Sprintf("%s: not scripted", name)}, nil
	}
	return out, nil
}

func (e *Executor) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Call(nil), e.calls...)
}

// CommandLines returns the recorded calls rendered as command lines.
func (e *Executor) CommandLines() []string {
	var lines []string
	for _, c := range e.Calls() {
		lines = append(lines, c.String())
	}
	return lines
}

// Killer pretends that the processes in Cmdlines are running.
type Killer struct {
	mu       sync.Mutex
	Cmdlines []string
	Err      error
	killed   []string
	patterns []string
}

func (k *Killer) KillMatching(ctx context.Context, cmdline *regexp.Regexp) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.patterns = append(k.patterns, cmdline.String())
	if k.Err != nil {
		return 0, k.Err
	}
	var running []string
	n := 0
	for _, c := range k.Cmdlines {
		if cmdline.MatchString(c) {
			k.killed = append(k.killed, c)
			n++
			continue
		}
		running = append(running, c)
	}
	k.Cmdlines = running
	return n, nil
}

func (k *Killer) Killed() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]string(nil), k.killed...)
}

func (k *Killer) Patterns() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]string(nil), k.patterns...)
}
