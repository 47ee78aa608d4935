package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"panduit/scraper/internal/domain"
)

const maxURLLineSize = 1024 * 1024

// ReadURLList reads one URL per line. Lines are trimmed but blank lines are
// kept, so they surface as fetch failures instead of being skipped silently.
func ReadURLList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open URL list: %w", err)
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxURLLineSize)
	for scanner.Scan() {
		urls = append(urls, strings.TrimSpace(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URL list %s: %w", path, err)
	}

	return urls, nil
}

// WriteRecords writes the records as an indented JSON array. HTML and
// non-ASCII characters are written as-is. The document is written to a temp
// file first, so path either holds the complete output or is left untouched.
func WriteRecords(path string, records []*domain.ProductRecord) error {
	if records == nil {
		records = make([]*domain.ProductRecord, 0)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpFile, err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}

	return nil
}
