package client

import (
	"context"
	"fmt"
	"time"

	"panduit/scraper/internal/config"
	"panduit/scraper/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

const (
	acceptHTML  = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptImage = "image/avif,image/webp,image/*,*/*;q=0.8"
)

type PanduitClient interface {
	FetchPage(ctx context.Context, url string) (string, error)
	FetchImage(ctx context.Context, url string) ([]byte, error)
	GetProduct(ctx context.Context, url string) (*domain.ProductRecord, error)
	Close() error
}

type panduitClient struct {
	httpClient *resty.Client
	parser     *ProductParser
}

func NewPanduitClient(cfg config.ScraperConfig) PanduitClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetRetryCount(0)

	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	rewrites := make([]Rewrite, 0, len(cfg.ImageRewrites))
	for _, rw := range cfg.ImageRewrites {
		rewrites = append(rewrites, Rewrite{From: rw.From, To: rw.To})
	}

	return &panduitClient{
		httpClient: client,
		parser:     NewProductParser(NewNormalizer(rewrites...)),
	}
}

func (c *panduitClient) FetchPage(ctx context.Context, url string) (string, error) {
	resp, err := c.get(ctx, url, acceptHTML)
	if err != nil {
		return "", err
	}

	html := resp.String()
	log.Debugf("Fetched page %s (%d bytes)", url, len(html))
	return html, nil
}

func (c *panduitClient) FetchImage(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.get(ctx, url, acceptImage)
	if err != nil {
		return nil, err
	}

	data := resp.Bytes()
	log.Debugf("Fetched image %s (%d bytes)", url, len(data))
	return data, nil
}

// GetProduct fetches a product page and extracts its record
func (c *panduitClient) GetProduct(ctx context.Context, url string) (*domain.ProductRecord, error) {
	html, err := c.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	record, err := c.parser.ParseProductPage(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product page %s: %w", url, err)
	}

	return record, nil
}

func (c *panduitClient) Close() error {
	return c.httpClient.Close()
}

func (c *panduitClient) get(ctx context.Context, url, accept string) (*resty.Response, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", accept).
		Get(url)

	if err != nil {
		// Check if this is a context cancellation from the parent context
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, &FetchError{URL: url, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	return resp, nil
}
