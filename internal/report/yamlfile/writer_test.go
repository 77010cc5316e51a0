package yamlfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"sysprobe/internal/model"
)

func TestWriter_Format(t *testing.T) {
	w := NewWriter()
	assert.Equal(t, "yaml", w.Format())
	assert.Equal(t, ".yaml", w.Extension())
}

func TestWriter_Write_NilRecord(t *testing.T) {
	assert.Error(t, NewWriter().Write(nil, filepath.Join(t.TempDir(), "status.yaml")))
}

func TestWriter_Write_Success(t *testing.T) {
	disk, err := model.NewDiskInfo("/", 400, 90)
	require.NoError(t, err)
	record := &model.StatusRecord{
		Timestamp:            "2024-05-06T07:08:09Z",
		System:               "Linux",
		Release:              "6.1.0",
		GoVersion:            "go1.25.5",
		Disk:                 disk,
		CommandRun:           "uname -a",
		CommandReturnCode:    127,
		CommandStderrPreview: "not found",
	}
	path := filepath.Join(t.TempDir(), "status.yaml")

	require.NoError(t, NewWriter().Write(record, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "Linux", decoded["system"])
	assert.Equal(t, 127, decoded["command_return_code"])
	assert.Equal(t, "not found", decoded["command_stderr_preview"])

	diskMap, ok := decoded["disk"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 22.5, diskMap["free_percent"])

	assert.True(t, strings.HasPrefix(string(data), "timestamp:"))
	assert.Contains(t, string(data), "\ndisk:\n  total_gb:")
}
