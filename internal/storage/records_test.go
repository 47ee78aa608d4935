package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"panduit/scraper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadURLList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new_links.txt")
	content := "https://www.panduit.com/a.html\r\n  https://www.panduit.com/b.html  \n\n\thttps://www.panduit.com/c.html\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	urls, err := ReadURLList(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://www.panduit.com/a.html",
		"https://www.panduit.com/b.html",
		"",
		"https://www.panduit.com/c.html",
	}, urls)
}

func TestReadURLListMissingFile(t *testing.T) {
	_, err := ReadURLList(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestWriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "data.json")

	first := domain.NewProductRecord()
	first.Title = "Кабельная стяжка <Pan-Ty> & co"
	first.SKU = "PLT2S-C"
	first.Description = "Стяжка"
	first.ImageURLs = []string{"https://www.panduit.com/a.jpg"}
	first.BreadcrumbPath = "Cable Ties > Nylon"
	first.TableData["Color"] = "Natural"

	second := domain.NewProductRecord()
	second.Title = "Second"
	second.SKU = "S2"

	require.NoError(t, WriteRecords(path, []*domain.ProductRecord{first, second}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, "Кабельная стяжка <Pan-Ty> & co")
	assert.Contains(t, text, "\n    {\n        \"title\"")
	assert.Contains(t, text, `"image_urls": []`)
	assert.Contains(t, text, `"table_data": {}`)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "PLT2S-C", decoded[0]["sku"])
	assert.Equal(t, "S2", decoded[1]["sku"])
	for _, key := range []string{"title", "sku", "description", "image_urls", "breadcrumb_path", "table_data"} {
		assert.Contains(t, decoded[0], key)
	}

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriteRecordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))

	require.NoError(t, WriteRecords(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}
