package system

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Executor = &Executor{}

// Executor runs tools directly, without a shell.
type Executor struct {
	timeout time.Duration
	log     *logrus.Entry
}

func NewExecutor(config dogewifi.Config) Executor {
	return Executor{
		timeout: config.Timeout,
		log:     config.Log("exec"),
	}
}

func (t Executor) Exec(ctx context.Context, name string, args ...string) (dogewifi.CommandOutput, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	out := dogewifi.CommandOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return out, fmt.Errorf("%s: %w", name, ctx.Err())
	case errors.As(err, &exitErr):
		out.ExitCode = exitErr.ExitCode()
	default:
		return out, fmt.Errorf("%s: %w", name, err)
	}

	t.log.WithFields(logrus.Fields{
		"cmd":     name,
		"args":    args,
		"exit":    out.ExitCode,
		"elapsed": time.Since(start),
	}).Debug("command finished")
	return out, nil
}
