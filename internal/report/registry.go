package report

import (
	"fmt"
	"sort"
	"strings"

	"sysprobe/internal/report/excel"
	"sysprobe/internal/report/jsonfile"
	"sysprobe/internal/report/yamlfile"
)

// Registry manages status writers for different formats.
// It provides a centralized way to access writers by format name.
type Registry struct {
	writers map[string]StatusWriter
}

// NewRegistry creates a new registry with pre-registered JSON, YAML and Excel writers.
func NewRegistry() *Registry {
	r := &Registry{
		writers: make(map[string]StatusWriter),
	}

	for _, w := range []StatusWriter{jsonfile.NewWriter(), yamlfile.NewWriter(), excel.NewWriter()} {
		r.writers[w.Format()] = w
	}

	return r
}

// Get returns a writer for the specified format.
// Format names are case-insensitive (e.g., "JSON", "Json", "json" all work).
// Returns an error if the format is not supported.
func (r *Registry) Get(format string) (StatusWriter, error) {
	normalizedFormat := strings.ToLower(strings.TrimSpace(format))

	writer, ok := r.writers[normalizedFormat]
	if !ok {
		supported := r.GetAll()
		return nil, fmt.Errorf("unsupported status format %q, supported formats: %s",
			format, strings.Join(supported, ", "))
	}

	return writer, nil
}

// GetAll returns all supported format names in sorted order.
func (r *Registry) GetAll() []string {
	formats := make([]string, 0, len(r.writers))
	for format := range r.writers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

// Has checks if the specified format is supported.
// Format names are case-insensitive.
func (r *Registry) Has(format string) bool {
	normalizedFormat := strings.ToLower(strings.TrimSpace(format))
	_, ok := r.writers[normalizedFormat]
	return ok
}
