package cmd

import (
	"context"
	"fmt"
	"time"

	"investingmenu/api"
	"investingmenu/internal"
	"investingmenu/internal/logger"
	"investingmenu/internal/repository"
)

const datasetCacheTTL = time.Hour

// InitializeDependencies wires the API handler from config: dataset source
// (local CSV in dev, S3 object otherwise), TTL-cached dataset repository,
// and the S3-backed question store.
func InitializeDependencies() (*api.ApiHandler, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New()

	var source repository.DatasetSource
	var questionStore repository.QuestionStore
	if config.DatasetPath != "" {
		source = repository.FileDatasetSource{Path: config.DatasetPath}
	}

	if config.DatasetBucket != "" || config.QuestionsBucket != "" {
		s3Client, err := repository.NewS3Client(context.Background(), config.AwsRegion)
		if err != nil {
			return nil, err
		}
		if source == nil {
			source = repository.S3DatasetSource{
				Client: s3Client,
				Bucket: config.DatasetBucket,
				Key:    config.DatasetKey,
			}
		}
		if config.QuestionsBucket != "" {
			questionStore = repository.NewS3QuestionStore(s3Client, config.QuestionsBucket)
		}
	}
	if source == nil {
		return nil, fmt.Errorf("config must set datasetPath or datasetBucket")
	}

	datasetRepository := repository.NewCachedDatasetRepository(
		repository.NewDatasetRepository(source),
		datasetCacheTTL,
	)

	return &api.ApiHandler{
		DatasetRepository: datasetRepository,
		QuestionStore:     questionStore,
		Logger:            log,
	}, nil
}
