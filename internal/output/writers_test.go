package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchmeta/agent/pkg/models"
)

func sampleMetadata() *models.Metadata {
	facts := models.NewFactSet()
	facts.Set("cpu_count", "8")
	facts.Set("cpu_freq", "0-7=2400 MHz")
	return &models.Metadata{
		Hostname:    "bench01",
		CollectedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Facts:       facts,
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	require.NoError(t, w.Write(context.Background(), sampleMetadata()))
	assert.Equal(t, "cpu_count: 8\ncpu_freq: 0-7=2400 MHz\n", buf.String())
}

func TestTextWriterNilMetadata(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	require.NoError(t, w.Write(context.Background(), nil))
	assert.Equal(t, "", buf.String())
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	require.NoError(t, w.Write(context.Background(), sampleMetadata()))

	var decoded struct {
		Hostname string            `json:"hostname"`
		Facts    map[string]string `json:"facts"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "bench01", decoded.Hostname)
	assert.Equal(t, "8", decoded.Facts["cpu_count"])

	// Fact order survives marshalling.
	assert.Less(t,
		bytes.Index(buf.Bytes(), []byte("cpu_count")),
		bytes.Index(buf.Bytes(), []byte("cpu_freq")))
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewYAMLWriter(&buf)

	require.NoError(t, w.Write(context.Background(), sampleMetadata()))
	out := buf.String()
	assert.Contains(t, out, "hostname: bench01")
	assert.Contains(t, out, "cpu_count:")
	assert.Less(t,
		bytes.Index(buf.Bytes(), []byte("cpu_count")),
		bytes.Index(buf.Bytes(), []byte("cpu_freq")))
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer

	for _, format := range []string{"text", "json", "yaml"} {
		w, err := New(format, &buf)
		require.NoError(t, err, format)
		assert.NotNil(t, w)
	}

	_, err := New("xml", &buf)
	assert.Error(t, err)
}
