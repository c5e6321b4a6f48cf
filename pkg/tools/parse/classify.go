package tools_parse

import (
	"context"
	"fmt"
	"strings"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
)

// Run executes a tool and returns its trimmed stdout. A nonzero exit is a
// *dogewifi.ProcessError and the output is discarded.
func Run(ctx context.Context, exec dogewifi.Executor, name string, args ...string) (string, error) {
	out, err := RunRaw(ctx, exec, name, args...)
	return strings.TrimSpace(out), err
}

// RunRaw is Run without trimming, for tab-separated tables whose last
// column may be empty.
func RunRaw(ctx context.Context, exec dogewifi.Executor, name string, args ...string) (string, error) {
	out, err := exec.Exec(ctx, name, args...)
	return CheckExit(dogewifi.CommandLine(name, args...), out, err)
}

// CheckExit returns stdout untouched when the command ran and exited 0.
func CheckExit(command string, out dogewifi.CommandOutput, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf("running %s: %w", command, err)
	}
	if out.ExitCode != 0 {
		return "", &dogewifi.ProcessError{
			Command:  command,
			ExitCode: out.ExitCode,
			Stderr:   out.Stderr,
		}
	}
	return out.Stdout, nil
}

// ClassifyCommand applies wpa_cli's convention: the first token is the
// result, and a result of exactly FAIL is a rejection.
func ClassifyCommand(command, stdout string) (dogewifi.CommandResult, error) {
	result := dogewifi.CommandResult{Result: FirstToken(stdout)}
	if result.Result == "FAIL" {
		return dogewifi.CommandResult{}, &dogewifi.CommandRejectedError{
			Command: command,
			Result:  result.Result,
		}
	}
	return result, nil
}
