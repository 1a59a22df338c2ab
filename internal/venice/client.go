package venice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/venicelabs/modelcatalog/internal/catalog"
)

// DefaultBaseURL is the public models endpoint.
const DefaultBaseURL = "https://api.venice.ai/api/v1/models"

const snapshotCacheKey = "venice-models-cache"

// Client fetches catalog snapshots from the upstream models API. The API
// serves one page per model type; a full snapshot is the concatenation of
// every type's page in type order.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a catalog fetch client. Empty baseURL uses
// DefaultBaseURL; zero timeout uses 30 seconds.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchModels retrieves the full catalog: one request per model type, issued
// concurrently. A failed or malformed page degrades to an empty page rather
// than failing the snapshot; the result is deduplicated by id keeping the
// first occurrence.
func (c *Client) FetchModels(ctx context.Context) []catalog.ModelRecord {
	pages := make([][]catalog.ModelRecord, len(catalog.ModelTypes))

	g, ctx := errgroup.WithContext(ctx)
	for i, typ := range catalog.ModelTypes {
		i, typ := i, typ
		g.Go(func() error {
			records, err := c.fetchType(ctx, typ)
			if err != nil {
				c.logger.Warn("model page fetch failed", "type", typ, "err", err)
				return nil
			}
			pages[i] = records
			return nil
		})
	}
	// Workers never return errors; per-type failures leave an empty page.
	g.Wait()

	var merged []catalog.ModelRecord
	seen := make(map[string]bool)
	for _, page := range pages {
		for _, rec := range page {
			if seen[rec.ID] {
				continue
			}
			seen[rec.ID] = true
			merged = append(merged, rec)
		}
	}
	return merged
}

func (c *Client) fetchType(ctx context.Context, typ catalog.ModelType) ([]catalog.ModelRecord, error) {
	u := fmt.Sprintf("%s?type=%s", c.baseURL, url.QueryEscape(string(typ)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s models: %w", typ, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("models endpoint returned %d for type %s", resp.StatusCode, typ)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s models response: %w", typ, err)
	}
	return catalog.DecodeRecords(body)
}

// Loader resolves a catalog snapshot through the cache-fetch-fallback chain.
// It always yields a usable catalog: the TTL cache first, then a fresh fetch
// (which repopulates the cache), then the baked-in static snapshot.
type Loader struct {
	client *Client
	cache  CacheStore
	logger *log.Logger
}

// NewLoader creates a loader over the given client and cache store.
func NewLoader(client *Client, cache CacheStore, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{client: client, cache: cache, logger: logger}
}

// Load returns the current catalog snapshot.
func (l *Loader) Load(ctx context.Context) []catalog.ModelRecord {
	if cached, ok := l.cachedSnapshot(); ok {
		return cached
	}
	if fresh := l.Refresh(ctx); len(fresh) > 0 {
		return fresh
	}
	l.logger.Info("using static fallback catalog")
	return catalog.StaticFallback()
}

// Refresh fetches a fresh snapshot, caching it when non-empty.
func (l *Loader) Refresh(ctx context.Context) []catalog.ModelRecord {
	records := l.client.FetchModels(ctx)
	if len(records) == 0 {
		return nil
	}
	if l.cache != nil {
		if data, err := json.Marshal(records); err == nil {
			l.cache.Set(snapshotCacheKey, data)
		}
	}
	return records
}

func (l *Loader) cachedSnapshot() ([]catalog.ModelRecord, bool) {
	if l.cache == nil {
		return nil, false
	}
	data, ok := l.cache.Get(snapshotCacheKey)
	if !ok {
		return nil, false
	}
	var records []catalog.ModelRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// A corrupt cache entry is treated as a miss.
		l.cache.Clear()
		return nil, false
	}
	if len(records) == 0 {
		return nil, false
	}
	return records, true
}
