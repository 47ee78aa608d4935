package client

import (
	"fmt"
	"strings"

	"panduit/scraper/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// Selectors match on class-list membership, so extra classes on an element
// do not prevent a match
const (
	titleSelector       = "h1.title.h1"
	skuSelector         = "h3.h3"
	descriptionSelector = "p.description"
	thumbsSelector      = "ul.list-unstyled.thumbs"
	specTableSelector   = "#collapseOne"
	breadcrumbSelector  = "li.breadcrumb-item"

	breadcrumbSeparator = " > "
	breadcrumbSkip      = 2 // "Home" and the top-level category
)

type ProductParser struct {
	normalizer *Normalizer
}

func NewProductParser(normalizer *Normalizer) *ProductParser {
	if normalizer == nil {
		normalizer = NewNormalizer()
	}
	return &ProductParser{
		normalizer: normalizer,
	}
}

// ParseProductPage extracts a ProductRecord from a product page. Title, SKU
// and description are mandatory; images, spec table and breadcrumbs fall
// back to empty values.
func (p *ProductParser) ParseProductPage(html string) (*domain.ProductRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	record := domain.NewProductRecord()

	if record.Title, err = requiredText(doc, "title", titleSelector); err != nil {
		return nil, err
	}
	if record.SKU, err = requiredText(doc, "sku", skuSelector); err != nil {
		return nil, err
	}
	if record.Description, err = requiredText(doc, "description", descriptionSelector); err != nil {
		return nil, err
	}

	record.ImageURLs = p.extractImageURLs(doc)
	record.TableData = extractTableData(doc)

	breadcrumbs := extractBreadcrumbs(doc)
	record.BreadcrumbPath = breadcrumbPath(breadcrumbs)

	log.WithFields(log.Fields{
		"title":       record.Title,
		"sku":         record.SKU,
		"description": record.Description,
		"image_urls":  record.ImageURLs,
		"breadcrumbs": breadcrumbs,
		"table_data":  record.TableData,
	}).Info("📦 Parsed product page")

	return record, nil
}

func requiredText(doc *goquery.Document, field, selector string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", &MissingFieldError{Field: field, Selector: selector}
	}
	return strings.TrimSpace(sel.Text()), nil
}

func (p *ProductParser) extractImageURLs(doc *goquery.Document) []string {
	imageURLs := make([]string, 0)

	doc.Find(thumbsSelector).First().Find("img").Each(func(i int, img *goquery.Selection) {
		src, exists := img.Attr("src")
		if !exists {
			log.Debugf("Skipping thumbnail %d without src", i)
			return
		}
		imageURLs = append(imageURLs, p.normalizer.Normalize(src))
	})

	return imageURLs
}

func extractTableData(doc *goquery.Document) map[string]string {
	tableData := make(map[string]string)

	doc.Find(specTableSelector).First().Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() != 2 {
			return
		}
		key := strings.TrimSpace(cells.Eq(0).Text())
		tableData[key] = strings.TrimSpace(cells.Eq(1).Text())
	})

	return tableData
}

func extractBreadcrumbs(doc *goquery.Document) []string {
	breadcrumbs := make([]string, 0)

	doc.Find(breadcrumbSelector).Each(func(i int, li *goquery.Selection) {
		breadcrumbs = append(breadcrumbs, strings.TrimSpace(li.Text()))
	})

	return breadcrumbs
}

func breadcrumbPath(breadcrumbs []string) string {
	if len(breadcrumbs) <= breadcrumbSkip {
		return ""
	}
	return strings.Join(breadcrumbs[breadcrumbSkip:], breadcrumbSeparator)
}
