// Package model provides data models for the probe.
package model

import "time"

// TimestampLayout is ISO-8601 with second precision and zone offset.
const TimestampLayout = time.RFC3339

// StatusRecord is the snapshot produced by one successful run.
// Field order is the serialized key order.
type StatusRecord struct {
	Timestamp            string    `json:"timestamp" yaml:"timestamp"`
	System               string    `json:"system" yaml:"system"`
	Release              string    `json:"release" yaml:"release"`
	GoVersion            string    `json:"go" yaml:"go"`
	Disk                 *DiskInfo `json:"disk" yaml:"disk"`
	CommandRun           string    `json:"command_run" yaml:"command_run"`
	CommandReturnCode    int       `json:"command_return_code" yaml:"command_return_code"`
	CommandStdoutPreview string    `json:"command_stdout_preview" yaml:"command_stdout_preview"`
	CommandStderrPreview string    `json:"command_stderr_preview" yaml:"command_stderr_preview"`
}

// NewStatusRecord assembles the snapshot from the pipeline outputs.
func NewStatusRecord(at time.Time, identity *OSIdentity, disk *DiskInfo, commandLine string, result *CommandResult) *StatusRecord {
	record := &StatusRecord{
		Timestamp:  at.Truncate(time.Second).Format(TimestampLayout),
		Disk:       disk,
		CommandRun: commandLine,
	}
	if identity != nil {
		record.System = identity.System
		record.Release = identity.Release
		record.GoVersion = identity.GoVersion
	}
	if result != nil {
		record.CommandReturnCode = result.ReturnCode
		record.CommandStdoutPreview = result.StdoutPreview
		record.CommandStderrPreview = result.StderrPreview
	}
	return record
}
