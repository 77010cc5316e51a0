package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sysprobe/internal/model"
)

func createTestRecord(t *testing.T) *model.StatusRecord {
	t.Helper()
	disk, err := model.NewDiskInfo("/", 400, 100)
	if err != nil {
		t.Fatalf("NewDiskInfo() error = %v", err)
	}
	return &model.StatusRecord{
		Timestamp:            "2024-05-06T07:08:09Z",
		System:               "Linux",
		Release:              "6.1.0",
		GoVersion:            "go1.25.5",
		Disk:                 disk,
		CommandRun:           "uname -a",
		CommandReturnCode:    0,
		CommandStdoutPreview: "Linux host 6.1.0 x86_64 GNU/Linux",
	}
}

func TestWriter_Format(t *testing.T) {
	w := NewWriter()
	if got := w.Format(); got != "json" {
		t.Errorf("Format() = %v, want json", got)
	}
	if got := w.Extension(); got != ".json" {
		t.Errorf("Extension() = %v, want .json", got)
	}
}

func TestWriter_Write_NilRecord(t *testing.T) {
	if err := NewWriter().Write(nil, filepath.Join(t.TempDir(), "status.json")); err == nil {
		t.Error("Write() with nil record should return error")
	}
}

func TestWriter_Write_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	if err := NewWriter().Write(createTestRecord(t), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var decoded model.StatusRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.System != "Linux" || decoded.CommandRun != "uname -a" {
		t.Errorf("unexpected decoded record: %+v", decoded)
	}
	if decoded.Disk == nil || decoded.Disk.FreePercent != 25 {
		t.Errorf("disk free_percent = %+v, want 25", decoded.Disk)
	}
	if strings.Contains(string(data), "\t") {
		t.Error("output should be indented with spaces")
	}
	if !strings.Contains(string(data), "\n  \"system\": \"Linux\"") {
		t.Errorf("output should use 2-space indentation:\n%s", data)
	}
	if strings.Contains(string(data), "TotalBytes") || strings.Contains(string(data), "\"Path\"") {
		t.Error("raw byte counters should not be serialized")
	}
}
