package output

import (
	"context"
	"fmt"
	"io"

	"github.com/benchmeta/agent/pkg/models"
)

// Writer renders a collected metadata snapshot to some destination.
type Writer interface {
	// Write renders a metadata payload
	Write(ctx context.Context, meta *models.Metadata) error
}

// New returns the writer for a format name: "text", "json", or "yaml".
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case "text":
		return NewTextWriter(w), nil
	case "json":
		return NewJSONWriter(w), nil
	case "yaml":
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
