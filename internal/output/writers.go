package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/benchmeta/agent/pkg/models"
)

// TextWriter renders facts as "name: value" lines in collection order.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a text writer
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// Write renders the fact set as one line per fact
func (t *TextWriter) Write(ctx context.Context, meta *models.Metadata) error {
	if meta == nil || meta.Facts == nil {
		return nil
	}

	var writeErr error
	meta.Facts.Each(func(name, value string) {
		if writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintf(t.w, "%s: %s\n", name, value)
	})
	return writeErr
}

// JSONWriter renders the whole payload as indented JSON.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON writer
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// Write marshals the payload; fact order is preserved
func (j *JSONWriter) Write(ctx context.Context, meta *models.Metadata) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// YAMLWriter renders the whole payload as YAML.
type YAMLWriter struct {
	w io.Writer
}

// NewYAMLWriter creates a YAML writer
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{w: w}
}

// Write marshals the payload; fact order is preserved
func (y *YAMLWriter) Write(ctx context.Context, meta *models.Metadata) error {
	enc := yaml.NewEncoder(y.w)
	defer enc.Close()
	return enc.Encode(meta)
}
