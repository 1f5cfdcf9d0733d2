package catalog

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"retail-cli/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped feed files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based feed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "feed-loader").Logger(),
	}
}

// Load reads a gzipped CSV product feed from the local filesystem.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.ProductInput, error) {
	l.logger.Info().Str("file", path).Msg("loading product feed")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open feed file")
		return nil, fmt.Errorf("failed to open feed file %s: %w", path, err)
	}
	defer file.Close()

	inputs, err := readFeed(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read feed file")
		return nil, fmt.Errorf("failed to read feed file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("products", len(inputs)).
		Msg("product feed loaded successfully")

	return inputs, nil
}

// readFeed decompresses and parses a gzipped CSV feed stream.
func readFeed(ctx context.Context, r io.Reader) ([]model.ProductInput, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	reader := csv.NewReader(gzipReader)
	reader.FieldsPerRecord = -1 // category column is optional
	reader.TrimLeadingSpace = true

	var inputs []model.ProductInput
	line := 0
	for {
		if line%1000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		if line == 1 && isHeader(record) {
			continue
		}

		input, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		inputs = append(inputs, input)
	}

	return inputs, nil
}
