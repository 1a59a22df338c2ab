package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/venicelabs/modelcatalog/internal/catalog"
)

// Video prices depend on resolution, duration and audio in ways the catalog
// cannot express as a static table, so they are resolved through the quote
// endpoint and memoized per selection.

// DefaultQuoteTimeout bounds a single quote request.
const DefaultQuoteTimeout = 10 * time.Second

// Quote requests need a prompt and, for image-to-video models, an image URL;
// neither affects the quoted price.
const (
	quotePrompt         = "quote"
	placeholderImageURL = "https://venice.ai/favicon.ico"
	defaultDuration     = "5s"
)

// Selection is the caller's pricing selection. Unset fields fall back to the
// model's defaults. Audio is a tri-state: nil means "not specified" and is
// omitted from quote requests.
type Selection struct {
	Resolution  string `json:"resolution,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Audio       *bool  `json:"audio,omitempty"`
	UpscaleTier string `json:"upscale_tier,omitempty"`
}

// QuoteRequest is the body sent to the quote endpoint.
type QuoteRequest struct {
	Model       string `json:"model"`
	Prompt      string `json:"prompt"`
	ImageURL    string `json:"image_url,omitempty"`
	Resolution  string `json:"resolution,omitempty"`
	Duration    string `json:"duration,omitempty"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
	Audio       *bool  `json:"audio,omitempty"`
}

type quoteResponse struct {
	Quote float64 `json:"quote"`
}

// QuoteClient fetches and memoizes video price quotes. Results are cached by
// (model, resolution, duration, audio); concurrent requests for the same key
// are collapsed into one network call. Failed quotes are never cached, so a
// transient upstream error does not pin "unavailable" for the session.
type QuoteClient struct {
	quoteURL   string
	httpClient *http.Client
	logger     *log.Logger

	mu    sync.Mutex
	cache map[string]float64
	group singleflight.Group
}

// NewQuoteClient creates a quote client for the given endpoint. A zero
// timeout uses DefaultQuoteTimeout.
func NewQuoteClient(quoteURL string, timeout time.Duration, logger *log.Logger) *QuoteClient {
	if timeout <= 0 {
		timeout = DefaultQuoteTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &QuoteClient{
		quoteURL:   quoteURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		cache:      make(map[string]float64),
	}
}

// VideoQuote returns the quoted price for a video model under the given
// selection. The second return is false when no quote could be obtained;
// network failures, timeouts and non-2xx responses all report that way
// rather than as errors.
func (c *QuoteClient) VideoQuote(ctx context.Context, m catalog.ModelRecord, sel Selection) (float64, bool) {
	duration := sel.Duration
	var aspectRatio string
	isImageToVideo := false
	if m.Constraints != nil {
		if duration == "" && len(m.Constraints.Durations) > 0 {
			duration = m.Constraints.Durations[0]
		}
		if len(m.Constraints.AspectRatios) > 0 {
			aspectRatio = m.Constraints.AspectRatios[0]
		}
		isImageToVideo = m.Constraints.ModelType == catalog.ImageToVideo
	}
	if duration == "" {
		duration = defaultDuration
	}

	key := quoteCacheKey(m.ID, sel.Resolution, duration, sel.Audio)

	c.mu.Lock()
	if price, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return price, true
	}
	c.mu.Unlock()

	req := QuoteRequest{
		Model:       m.ID,
		Prompt:      quotePrompt,
		Resolution:  sel.Resolution,
		Duration:    duration,
		AspectRatio: aspectRatio,
		Audio:       sel.Audio,
	}
	if isImageToVideo {
		req.ImageURL = placeholderImageURL
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		price, err := c.fetchQuote(ctx, req)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[key] = price
		c.mu.Unlock()
		return price, nil
	})
	if err != nil {
		c.logger.Warn("video quote unavailable", "model", m.ID, "err", err)
		return 0, false
	}
	return v.(float64), true
}

// CachedQuote returns the memoized quote for a selection without issuing a
// network request.
func (c *QuoteClient) CachedQuote(modelID string, sel Selection) (float64, bool) {
	duration := sel.Duration
	if duration == "" {
		duration = defaultDuration
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	price, ok := c.cache[quoteCacheKey(modelID, sel.Resolution, duration, sel.Audio)]
	return price, ok
}

// ClearCache drops all memoized quotes.
func (c *QuoteClient) ClearCache() {
	c.mu.Lock()
	c.cache = make(map[string]float64)
	c.mu.Unlock()
}

func (c *QuoteClient) fetchQuote(ctx context.Context, req QuoteRequest) (float64, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("marshal quote request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.quoteURL, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build quote request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("quote request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("quote endpoint returned %d", resp.StatusCode)
	}

	var qr quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return 0, fmt.Errorf("decode quote response: %w", err)
	}
	return qr.Quote, nil
}

func quoteCacheKey(modelID, resolution, duration string, audio *bool) string {
	res := resolution
	if res == "" {
		res = "default"
	}
	aud := "default"
	if audio != nil {
		aud = fmt.Sprintf("%t", *audio)
	}
	return fmt.Sprintf("%s:%s:%s:%s", modelID, res, duration, aud)
}
