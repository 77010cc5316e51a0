package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"sysprobe/internal/model"
)

// waitDelay bounds how long Wait blocks on output pipes after the command
// has been killed.
const waitDelay = 2 * time.Second

// DiagnosticCommand returns the fixed diagnostic command for an OS family.
func DiagnosticCommand(osName string) []string {
	if strings.EqualFold(strings.TrimSpace(osName), "windows") {
		return []string{"cmd", "/c", "systeminfo"}
	}
	return []string{"uname", "-a"}
}

// Prober runs the diagnostic command and captures its outcome.
type Prober struct {
	timeout time.Duration
	command []string
	logger  zerolog.Logger
}

// ProberOption is a functional option for configuring a Prober.
type ProberOption func(*Prober)

// WithCommand replaces the OS-selected command.
func WithCommand(name string, args ...string) ProberOption {
	return func(p *Prober) {
		p.command = append([]string{name}, args...)
	}
}

// NewProber creates a Prober. A zero timeout leaves the command unbounded.
func NewProber(timeout time.Duration, logger zerolog.Logger, opts ...ProberOption) *Prober {
	p := &Prober{
		timeout: timeout,
		logger:  logger.With().Str("component", "prober").Logger(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Probe runs the diagnostic command for osName and returns the command line
// together with its result. It never fails: launch errors and timeouts are
// recorded in the result.
func (p *Prober) Probe(ctx context.Context, osName string) (string, *model.CommandResult) {
	argv := p.command
	if len(argv) == 0 {
		argv = DiagnosticCommand(osName)
	}
	commandLine := strings.Join(argv, " ")

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	var result *model.CommandResult
	var exitErr *exec.ExitError
	switch {
	case err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded):
		msg := fmt.Sprintf("command timed out after %s", p.timeout)
		if text := strings.TrimSpace(stderr.String()); text != "" {
			msg = text + "\n" + msg
		}
		result = model.NewCommandResult(model.ReturnCodeNotRun, stdout.String(), msg)
	case errors.As(err, &exitErr):
		result = model.NewCommandResult(exitErr.ExitCode(), stdout.String(), stderr.String())
	case err != nil:
		result = model.NewFailedCommandResult(err)
	default:
		result = model.NewCommandResult(0, stdout.String(), stderr.String())
	}

	event := p.logger.Debug()
	if !result.Succeeded() {
		event = p.logger.Warn().Err(err)
	}
	event.
		Str("command", commandLine).
		Int("return_code", result.ReturnCode).
		Dur("duration", elapsed).
		Msg("diagnostic command finished")

	return commandLine, result
}
