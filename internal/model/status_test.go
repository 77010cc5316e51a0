package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusRecord(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 987654321, time.UTC)
	identity := &OSIdentity{System: "Linux", Release: "6.1.0", GoVersion: "go1.25.5"}
	disk, err := NewDiskInfo("/", 100*gib, 25*gib)
	require.NoError(t, err)
	result := NewCommandResult(0, "Linux host 6.1.0", "")

	record := NewStatusRecord(at, identity, disk, "uname -a", result)

	assert.Equal(t, "2024-03-09T14:05:07Z", record.Timestamp)
	assert.Equal(t, "Linux", record.System)
	assert.Equal(t, "6.1.0", record.Release)
	assert.Equal(t, "go1.25.5", record.GoVersion)
	assert.Same(t, disk, record.Disk)
	assert.Equal(t, "uname -a", record.CommandRun)
	assert.Equal(t, 0, record.CommandReturnCode)
	assert.Equal(t, "Linux host 6.1.0", record.CommandStdoutPreview)
	assert.Empty(t, record.CommandStderrPreview)
}

func TestNewStatusRecord_TimestampKeepsOffset(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, loc)

	record := NewStatusRecord(at, nil, nil, "", nil)

	assert.Equal(t, "2024-03-09T14:05:07+08:00", record.Timestamp)
}
