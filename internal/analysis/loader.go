package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// DefaultPath is the resource the dashboard loads when nothing else is configured.
const DefaultPath = "analysis_results.json"

// ErrLoad wraps every fetch or parse failure.
var ErrLoad = errors.New("loading analysis data")

// Loader fetches and parses an analysis document from a file path or an
// http(s) URL.
type Loader struct {
	Source string
	Client *http.Client
}

// NewLoader creates a Loader for source. An empty source means DefaultPath.
func NewLoader(source string) *Loader {
	if source == "" {
		source = DefaultPath
	}
	return &Loader{
		Source: source,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Load performs a single fetch and parse. There is no retry.
func (l *Loader) Load(ctx context.Context) (*Document, error) {
	data, err := l.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return doc, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if !isURL(l.Source) {
		return os.ReadFile(l.Source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", l.Source, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Parse decodes a document from raw JSON. The document keeps data for Raw,
// so callers must not modify it afterwards.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing analysis document: %w", err)
	}
	if doc.Texts == nil {
		return nil, fmt.Errorf("parsing analysis document: missing texts")
	}
	doc.raw = data
	return &doc, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
