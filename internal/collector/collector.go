// Internal/collector/collector.go.

package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dkolesni-prog/collector/internal/logx"
)

// Collector holds the unique URLs accepted by the most recent successful
// load. A Collector is not safe for concurrent use; callers sharing one
// across goroutines must provide their own locking.
type Collector struct {
	urls []string
}

func New() *Collector {
	return &Collector{}
}

// Load replaces the collector contents with the unique valid URLs found in
// the CSV file at path and returns them. On any failure the previous
// contents are kept.
func (c *Collector) Load(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: CSV file path is required", ErrInvalidArgument)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: CSV file %s", ErrNotFound, path)
	}
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".csv") {
		return nil, fmt.Errorf("%w: expected .csv extension, got %q", ErrInvalidArgument, ext)
	}

	urls, err := scanFile(path)
	if err != nil {
		return nil, err
	}

	c.urls = urls
	logx.Log.Info().
		Str("load_id", uuid.NewString()).
		Int("count", len(urls)).
		Str("path", path).
		Msg("loaded unique urls")
	return c.URLs(), nil
}

// URLs returns a copy of the held URLs in first-seen order.
func (c *Collector) URLs() []string {
	out := make([]string, len(c.urls))
	copy(out, c.urls)
	return out
}

func (c *Collector) Count() int {
	return len(c.urls)
}

// Clear drops all held URLs. Safe to call repeatedly.
func (c *Collector) Clear() {
	c.urls = nil
}
