package task

import (
	"testing"

	"panduit/scraper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageDownloadTask(t *testing.T) {
	tests := []struct {
		name     string
		sku      string
		index    int
		expected string
	}{
		{"Plain SKU", "PLT2S-C", 1, "PLT2S-C_1"},
		{"Second image", "PLT2S-C", 2, "PLT2S-C_2"},
		{"Unsanitized SKU keeps its characters", "A/B:C", 3, "A/B:C_3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewImageDownloadTask("https://example.com/a.jpg", tt.sku, tt.index)
			assert.Equal(t, tt.expected, task.TargetBasename)
			assert.Equal(t, "https://example.com/a.jpg", task.SourceURL)
		})
	}
}

func TestTaskValueRoundTrip(t *testing.T) {
	record := domain.NewProductRecord()
	record.SKU = "PLT2S-C"
	record.TableData["Color"] = "Natural"

	original := &ProductTask{RunID: "run-1", SourceURL: "https://example.com/p", Record: record}
	assert.Equal(t, "ProductTask", original.TaskType())

	raw, err := original.TaskValue()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"run_id":"run-1"`)

	decoded, err := UnmarshalTask[*ProductTask](raw)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
