package service

import (
	"context"

	"panduit/scraper/internal/domain"
	"panduit/scraper/internal/domain/task"
	"panduit/scraper/internal/storage"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// downloadImages fetches every image of the record concurrently. It returns
// only after all fetches have finished, with the first error if any failed.
func (s *Service) downloadImages(ctx context.Context, record *domain.ProductRecord) error {
	g := new(errgroup.Group)
	if s.maxImageWorkers > 0 {
		g.SetLimit(s.maxImageWorkers)
	}

	for i, imageURL := range record.ImageURLs {
		downloadTask := task.NewImageDownloadTask(imageURL, record.SKU, i+1)
		g.Go(func() error {
			return s.FetchImage(ctx, downloadTask)
		})
	}

	return g.Wait()
}

// FetchImage downloads one image into the image directory, named after the
// task's basename and the extension of its URL
func (s *Service) FetchImage(ctx context.Context, downloadTask *task.ImageDownloadTask) error {
	data, err := s.client.FetchImage(ctx, downloadTask.SourceURL)
	if err != nil {
		return err
	}

	path, err := s.images.Save(downloadTask.TargetBasename, storage.ImageExtension(downloadTask.SourceURL), data)
	if err != nil {
		return err
	}

	log.Debugf("🖼️ Saved %s to %s", downloadTask.SourceURL, path)
	return nil
}
