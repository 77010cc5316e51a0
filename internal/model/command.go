// Package model provides data models for the probe.
package model

import "strings"

// PreviewLimit is the maximum length, in characters, of an output preview.
const PreviewLimit = 500

// ReturnCodeNotRun marks a command that could not be started or did not finish.
const ReturnCodeNotRun = -1

// CommandResult is the outcome of the diagnostic command.
type CommandResult struct {
	ReturnCode    int    `json:"command_return_code" yaml:"command_return_code"`
	StdoutPreview string `json:"command_stdout_preview" yaml:"command_stdout_preview"`
	StderrPreview string `json:"command_stderr_preview" yaml:"command_stderr_preview"`
}

// NewCommandResult builds a result from fully captured output.
func NewCommandResult(returnCode int, stdout, stderr string) *CommandResult {
	return &CommandResult{
		ReturnCode:    returnCode,
		StdoutPreview: Preview(stdout),
		StderrPreview: Preview(stderr),
	}
}

// NewFailedCommandResult records a command that never produced a normal exit.
func NewFailedCommandResult(err error) *CommandResult {
	msg := "command failed"
	if err != nil {
		msg = err.Error()
	}
	return NewCommandResult(ReturnCodeNotRun, "", msg)
}

// Succeeded returns true if the command exited with status zero.
func (r *CommandResult) Succeeded() bool {
	return r != nil && r.ReturnCode == 0
}

// Preview trims surrounding whitespace and cuts text to PreviewLimit characters.
// The cut is made on rune boundaries so multi-byte characters stay intact.
func Preview(text string) string {
	text = strings.TrimSpace(text)

	count := 0
	for i := range text {
		if count == PreviewLimit {
			return text[:i]
		}
		count++
	}
	return text
}
