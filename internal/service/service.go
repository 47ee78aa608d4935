package service

import (
	"context"
	"fmt"

	"panduit/scraper/internal/client"
	"panduit/scraper/internal/config"
	"panduit/scraper/internal/domain"
	"panduit/scraper/internal/domain/task"
	"panduit/scraper/internal/queue"
	"panduit/scraper/internal/repository"
	"panduit/scraper/internal/state"
	"panduit/scraper/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service struct {
	repository      repository.ProductRepository
	client          client.PanduitClient
	queue           queue.Queue
	stateManager    state.StateManager
	images          *storage.ImageStore
	inputFile       string
	outputFile      string
	maxImageWorkers int
	continueOnError bool
}

func NewService(
	repository repository.ProductRepository,
	client client.PanduitClient,
	queue queue.Queue,
	stateManager state.StateManager,
	images *storage.ImageStore,
	cfg config.ScraperConfig,
) *Service {
	return &Service{
		repository:      repository,
		client:          client,
		queue:           queue,
		stateManager:    stateManager,
		images:          images,
		inputFile:       cfg.InputFile,
		outputFile:      cfg.OutputFile,
		maxImageWorkers: cfg.MaxImageWorkers,
		continueOnError: cfg.ContinueOnError,
	}
}

// Run processes every URL of the input list in order, one page at a time,
// and writes the collected records once at the end. By default the first
// failing page aborts the run and no output file is written.
func (s *Service) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger := log.WithField("run_id", runID)

	urls, err := storage.ReadURLList(s.inputFile)
	if err != nil {
		return err
	}

	logger.Infof("🔄 Processing %d product pages from %s", len(urls), s.inputFile)

	if err := s.stateManager.StartRun(ctx, runID, len(urls)); err != nil {
		return err
	}

	records, err := s.processAll(ctx, runID, urls)
	if err == nil {
		err = storage.WriteRecords(s.outputFile, records)
	}

	if err != nil {
		s.finishRun(ctx, runID, state.RunStatusFailed, err)
		return err
	}

	s.finishRun(ctx, runID, state.RunStatusCompleted, nil)

	images := 0
	for _, record := range records {
		images += len(record.ImageURLs)
	}
	logger.Infof("✅ Wrote %d product records (%d images) to %s", len(records), images, s.outputFile)

	return nil
}

func (s *Service) processAll(ctx context.Context, runID string, urls []string) ([]*domain.ProductRecord, error) {
	records := make([]*domain.ProductRecord, 0, len(urls))

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled before page %d: %w", i+1, err)
		}

		record, err := s.ProcessPage(ctx, url)
		if err != nil {
			if !s.continueOnError {
				return nil, fmt.Errorf("failed to process page %d (%s): %w", i+1, url, err)
			}
			log.WithField("run_id", runID).Warnf("⚠️ Skipping page %d (%s): %v", i+1, url, err)
			continue
		}

		if err := s.saveRecord(ctx, runID, url, record); err != nil {
			return nil, err
		}
		records = append(records, record)

		if err := s.stateManager.SetProcessedPages(ctx, runID, i+1); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// ProcessPage fetches one product page, extracts its record and downloads
// all of its images. The record is returned unchanged.
func (s *Service) ProcessPage(ctx context.Context, url string) (*domain.ProductRecord, error) {
	record, err := s.client.GetProduct(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := s.downloadImages(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to download images for %s: %w", record.SKU, err)
	}

	log.Infof("✅ Processed %s (%s) with %d images", record.SKU, url, len(record.ImageURLs))
	return record, nil
}

func (s *Service) saveRecord(ctx context.Context, runID, url string, record *domain.ProductRecord) error {
	if err := s.repository.SaveProduct(ctx, runID, record); err != nil {
		return err
	}

	_, err := s.queue.AddTask(ctx, &task.ProductTask{
		RunID:     runID,
		SourceURL: url,
		Record:    record,
	})
	if err != nil {
		return fmt.Errorf("failed to publish product %s: %w", record.SKU, err)
	}

	return nil
}

// finishRun records the outcome even if ctx was cancelled; a failure to do so
// is logged and does not replace the run's own error
func (s *Service) finishRun(ctx context.Context, runID string, status state.RunStatus, runErr error) {
	if err := s.stateManager.FinishRun(context.WithoutCancel(ctx), runID, status, runErr); err != nil {
		log.WithField("run_id", runID).Errorf("❌ Failed to record run status %s: %v", status, err)
	}
}
