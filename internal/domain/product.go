package domain

// ProductRecord is the structured data extracted from a single product page
type ProductRecord struct {
	Title          string            `json:"title"`
	SKU            string            `json:"sku"`
	Description    string            `json:"description"`
	ImageURLs      []string          `json:"image_urls"`      // Normalized, in document order
	BreadcrumbPath string            `json:"breadcrumb_path"` // Items after "Home" and the category root, joined by " > "
	TableData      map[string]string `json:"table_data"`      // Spec table rows, last duplicate key wins
}

// NewProductRecord returns a record with non-nil collections so that empty
// results serialize as [] and {} rather than null
func NewProductRecord() *ProductRecord {
	return &ProductRecord{
		ImageURLs: make([]string, 0),
		TableData: make(map[string]string),
	}
}
