package dogewifi

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestProcessError(t *testing.T) {
	var err error = &ProcessError{Command: "iw dev wlan0 scan", ExitCode: 240, Stderr: "command failed: Device or resource busy (-16)\n"}
	wrapped := fmt.Errorf("scan: %w", err)

	if !errors.Is(wrapped, ErrProcessFailed) {
		t.Error("errors.Is(ErrProcessFailed) = false")
	}
	if errors.Is(wrapped, ErrCommandRejected) {
		t.Error("errors.Is(ErrCommandRejected) = true")
	}

	var perr *ProcessError
	if !errors.As(wrapped, &perr) || perr.ExitCode != 240 {
		t.Errorf("errors.As() = %v", perr)
	}
	if want := "iw dev wlan0 scan: exit status 240: command failed: Device or resource busy (-16)"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCommandRejectedError(t *testing.T) {
	err := &CommandRejectedError{Command: "wpa_cli -i wlan0 select_network 9", Result: "FAIL"}
	if err.Error() != "FAIL" {
		t.Errorf("Error() = %q, want FAIL", err.Error())
	}
	if !errors.Is(err, ErrCommandRejected) || errors.Is(err, ErrProcessFailed) {
		t.Error("CommandRejectedError matched the wrong sentinel")
	}
}

func TestFieldErrorUnwraps(t *testing.T) {
	_, cause := strconv.Atoi("99999999999999999999")
	err := &FieldError{Field: "signal", Text: "99999999999999999999", Err: cause}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("errors.Is(strconv.ErrRange) = false for %v", err)
	}
}
