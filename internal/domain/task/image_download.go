package task

import "fmt"

type ImageDownloadTask struct {
	SourceURL      string `json:"source_url"`      // Normalized image URL
	TargetBasename string `json:"target_basename"` // "{sku}_{index}", sanitized when written
}

// NewImageDownloadTask names the image by SKU and its 1-based position on the page
func NewImageDownloadTask(sourceURL, sku string, index int) *ImageDownloadTask {
	return &ImageDownloadTask{
		SourceURL:      sourceURL,
		TargetBasename: fmt.Sprintf("%s_%d", sku, index),
	}
}

func (t *ImageDownloadTask) TaskType() string {
	return "ImageDownloadTask"
}

func (t *ImageDownloadTask) TaskValue() ([]byte, error) {
	return DefaultTaskValue(t)
}
