// Internal/collector/csv.go.

package collector

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dkolesni-prog/collector/internal/logx"
)

// scanFile reads the CSV file at path and returns every cell value that
// passes IsValidURL, deduplicated by exact string equality in first-seen
// order. Rows may have any number of cells.
func scanFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening CSV file: %w", ErrLoadFailure, err)
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			logx.Log.Error().Err(err).Msg("error closing file")
		}
	}(file)

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// The header row is column metadata, never a URL candidate. A file
	// with no rows at all holds zero URLs.
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading CSV file: %w", ErrLoadFailure, err)
	}

	var urls []string
	seen := make(map[string]struct{})
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV file: %w", ErrLoadFailure, err)
		}
		for _, cell := range record {
			if !IsValidURL(cell) {
				continue
			}
			if _, dup := seen[cell]; dup {
				continue
			}
			seen[cell] = struct{}{}
			urls = append(urls, cell)
		}
	}

	return urls, nil
}
