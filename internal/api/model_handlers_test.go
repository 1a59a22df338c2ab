package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venicelabs/modelcatalog/internal/catalog"
	"github.com/venicelabs/modelcatalog/internal/config"
	"github.com/venicelabs/modelcatalog/internal/pricing"
	"github.com/venicelabs/modelcatalog/internal/venice"
)

func usd(v float64) *float64 { return &v }

func testServer(t *testing.T, records []catalog.ModelRecord, loader *venice.Loader) *Server {
	t.Helper()
	store := catalog.NewStore()
	store.Replace(records)
	return NewServer(&config.Config{}, store, pricing.NewResolver(nil), loader, nil)
}

func testRecords() []catalog.ModelRecord {
	return []catalog.ModelRecord{
		{
			ID: "llama-3.3-70b", Type: catalog.ModelTypeText, Name: "Llama 3.3 70B",
			Privacy: catalog.PrivacyPrivate,
			Pricing: catalog.Pricing{Kind: catalog.PricingTokenRates, Tokens: &catalog.TokenRates{Input: 0.7, Output: 2.8}},
		},
		{
			ID: "venice-sd35", Type: catalog.ModelTypeImage, Name: "Venice SD35",
			Pricing: catalog.Pricing{Kind: catalog.PricingImageFlat, Generation: usd(0.01)},
		},
		{
			ID: "upscaler", Type: catalog.ModelTypeUpscale, Name: "Upscaler",
			Pricing: catalog.Pricing{Kind: catalog.PricingUpscale, Upscale: map[string]float64{"2x": 0.02, "4x": 0.08}},
		},
		{
			ID: "veo3-fast-text-to-video", Type: catalog.ModelTypeVideo, Name: "Veo 3 Fast",
			Constraints: &catalog.Constraints{ModelType: catalog.TextToVideo, Durations: []string{"8s"}},
			Pricing:     catalog.Pricing{Kind: catalog.PricingVideoQuote},
		},
	}
}

func doRequest(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestListModels(t *testing.T) {
	s := testServer(t, testRecords(), nil)
	rec := doRequest(t, s, "GET", "/api/v1/models")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var resp struct {
		Models []ModelView `json:"models"`
		Total  int         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, "Llama 3.3 70B", resp.Models[0].DisplayName)
}

func TestListModelsFiltered(t *testing.T) {
	s := testServer(t, testRecords(), nil)
	rec := doRequest(t, s, "GET", "/api/v1/models?category=image")

	var resp struct {
		Models []ModelView `json:"models"`
		Total  int         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Image category includes the upscaler.
	assert.Equal(t, 2, resp.Total)
}

func TestListModelsUnknownFilterIsEmptyNotError(t *testing.T) {
	s := testServer(t, testRecords(), nil)
	rec := doRequest(t, s, "GET", "/api/v1/models?category=bogus")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Total)
}

func TestGetModel(t *testing.T) {
	s := testServer(t, testRecords(), nil)
	rec := doRequest(t, s, "GET", "/api/v1/models/veo3-fast-text-to-video")

	require.Equal(t, http.StatusOK, rec.Code)
	var view ModelView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "veo3-fast-text-to-video", view.ID)
	assert.True(t, view.FixedVideoPrice)
}

func TestGetModelSlashInID(t *testing.T) {
	records := append(testRecords(), catalog.ModelRecord{
		ID: "nvidia/parakeet-tdt-0.6b-v3", Type: catalog.ModelTypeASR, Name: "Parakeet ASR",
		Pricing: catalog.Pricing{Kind: catalog.PricingPerAudioSecond, PerAudioSecond: usd(0.0001)},
	})
	s := testServer(t, records, nil)
	rec := doRequest(t, s, "GET", "/api/v1/models/nvidia/parakeet-tdt-0.6b-v3")

	require.Equal(t, http.StatusOK, rec.Code)
	var view ModelView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "nvidia/parakeet-tdt-0.6b-v3", view.ID)
}

func TestGetModelNotFound(t *testing.T) {
	s := testServer(t, testRecords(), nil)
	rec := doRequest(t, s, "GET", "/api/v1/models/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestModelPrice(t *testing.T) {
	s := testServer(t, testRecords(), nil)
	rec := doRequest(t, s, "GET", "/api/v1/models/upscaler/price?tier=4x")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Model     string  `json:"model"`
		Available bool    `json:"available"`
		Price     float64 `json:"price"`
		Display   string  `json:"display"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, 0.08, resp.Price)
	assert.Equal(t, "$0.08", resp.Display)
}

func TestModelPriceUnavailableIsStill200(t *testing.T) {
	// No quote client wired, so video pricing cannot resolve.
	s := testServer(t, testRecords(), nil)
	rec := doRequest(t, s, "GET", "/api/v1/models/veo3-fast-text-to-video/price")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Available bool   `json:"available"`
		Display   string `json:"display"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, catalog.PriceUnavailable, resp.Display)
}

func TestModelPriceBadAudioValue(t *testing.T) {
	s := testServer(t, testRecords(), nil)
	rec := doRequest(t, s, "GET", "/api/v1/models/veo3-fast-text-to-video/price?audio=maybe")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshSwapsStore(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") == "text" {
			fmt.Fprint(w, `{"data":[{"id":"fresh","type":"text","model_spec":{"pricing":{"input":{"usd":1},"output":{"usd":2}}}}]}`)
			return
		}
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer upstream.Close()

	loader := venice.NewLoader(venice.NewClient(upstream.URL, 0, nil), nil, nil)
	s := testServer(t, testRecords(), loader)

	rec := doRequest(t, s, "POST", "/api/v1/models/refresh")
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := s.store.ByID("fresh")
	assert.True(t, ok)
	_, ok = s.store.ByID("llama-3.3-70b")
	assert.False(t, ok, "refresh replaces the whole snapshot")
}

func TestRefreshUpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	loader := venice.NewLoader(venice.NewClient(upstream.URL, 0, nil), nil, nil)
	s := testServer(t, testRecords(), loader)

	rec := doRequest(t, s, "POST", "/api/v1/models/refresh")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 4, s.store.Len(), "a failed refresh keeps the current catalog")
}

func TestHealth(t *testing.T) {
	s := testServer(t, testRecords(), nil)
	rec := doRequest(t, s, "GET", "/api/v1/health")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Status string `json:"status"`
		Models int    `json:"models"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 4, resp.Models)
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(t, testRecords(), nil)
	rec := doRequest(t, s, "OPTIONS", "/api/v1/models")

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
