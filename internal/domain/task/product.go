package task

import "panduit/scraper/internal/domain"

type ProductTask struct {
	RunID     string                `json:"run_id"`     // Batch run that produced the record
	SourceURL string                `json:"source_url"` // Product page URL
	Record    *domain.ProductRecord `json:"record"`
}

func (t *ProductTask) TaskType() string {
	return "ProductTask"
}

func (t *ProductTask) TaskValue() ([]byte, error) {
	return DefaultTaskValue(t)
}
