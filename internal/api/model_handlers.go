package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/venicelabs/modelcatalog/internal/catalog"
	"github.com/venicelabs/modelcatalog/internal/pricing"
)

// ModelView is a catalog record enriched with the derived status flags and
// display hints clients would otherwise have to compute themselves.
type ModelView struct {
	catalog.ModelRecord

	DisplayName       string                   `json:"displayName"`
	Anonymized        bool                     `json:"anonymized"`
	Beta              bool                     `json:"beta"`
	Deprecated        bool                     `json:"deprecated"`
	DeprecationState  catalog.DeprecationState `json:"deprecationState,omitempty"`
	Uncensored        bool                     `json:"uncensored"`
	New               bool                     `json:"new"`
	RateLimitTier     catalog.RateLimitTier    `json:"rateLimitTier,omitempty"`
	ContextDisplay    string                   `json:"contextDisplay,omitempty"`
	AddedDisplay      string                   `json:"addedDisplay,omitempty"`
	FixedVideoPrice   bool                     `json:"fixedVideoPrice,omitempty"`
	VideoAudioPricing bool                     `json:"videoAudioPricing,omitempty"`
}

func modelView(m catalog.ModelRecord) ModelView {
	view := ModelView{
		ModelRecord:      m,
		DisplayName:      m.DisplayName(),
		Anonymized:       catalog.IsAnonymized(m),
		Beta:             catalog.IsBeta(m),
		Deprecated:       catalog.IsDeprecated(m),
		DeprecationState: catalog.DeprecationStatus(m.DeprecationDate),
		Uncensored:       catalog.IsUncensored(m),
		New:              catalog.IsNew(m),
	}
	if tier, ok := catalog.RateLimitTierFor(m); ok {
		view.RateLimitTier = tier
	}
	if m.AvailableContextTokens > 0 {
		view.ContextDisplay = catalog.FormatContext(m.AvailableContextTokens)
	}
	if m.Created > 0 {
		view.AddedDisplay = catalog.FormatAddedDate(m.Created)
	}
	if m.Type == catalog.ModelTypeVideo {
		cfg := pricing.VideoConfigFor(m.ID)
		view.FixedVideoPrice = pricing.IsFixedPrice(m)
		view.VideoAudioPricing = cfg.AudioPricing
	}
	return view
}

// handleListModels serves GET /api/v1/models. Query parameters map directly
// onto the filter engine; unknown values yield an empty result rather than an
// error.
func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := catalog.QueryState{
		Query:      q.Get("q"),
		Category:   catalog.Category(q.Get("category")),
		Capability: catalog.CapabilityFilter(q.Get("capability")),
		VideoType:  catalog.VideoModelType(q.Get("video_type")),
		ImageType:  catalog.ImageFilter(q.Get("image_type")),
		Sort:       catalog.SortMode(q.Get("sort")),
	}

	matched := catalog.Filter(s.store.All(), state)
	views := make([]ModelView, 0, len(matched))
	for _, m := range matched {
		views = append(views, modelView(m))
	}

	s.writeJSON(w, map[string]interface{}{
		"models": views,
		"total":  len(views),
	})
}

// handleGetModel serves GET /api/v1/models/{id}.
func (s *Server) handleGetModel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	m, ok := s.store.ByID(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "model not found: "+id)
		return
	}
	s.writeJSON(w, modelView(m))
}

// handleModelPrice serves GET /api/v1/models/{id}/price. An unavailable price
// is a normal outcome, not an error: the response carries available=false and
// the display marker with status 200.
func (s *Server) handleModelPrice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	m, ok := s.store.ByID(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "model not found: "+id)
		return
	}

	q := r.URL.Query()
	sel := pricing.Selection{
		Resolution:  q.Get("resolution"),
		Duration:    q.Get("duration"),
		UpscaleTier: q.Get("tier"),
	}
	if raw := q.Get("audio"); raw != "" {
		audio, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid audio value: "+raw)
			return
		}
		sel.Audio = &audio
	}

	price, ok := s.resolver.Resolve(r.Context(), m, sel)
	resp := map[string]interface{}{
		"model":     m.ID,
		"available": ok,
	}
	if ok {
		resp["price"] = price
		resp["display"] = catalog.FormatUSD(price)
	} else {
		resp["display"] = catalog.PriceUnavailable
	}
	s.writeJSON(w, resp)
}

// handleRefresh serves POST /api/v1/models/refresh: force a fetch, bypassing
// the snapshot cache, and swap the store on success.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	records := s.loader.Refresh(r.Context())
	if len(records) == 0 {
		s.writeError(w, http.StatusBadGateway, "upstream fetch returned no models")
		return
	}
	s.store.Replace(records)

	s.writeJSON(w, map[string]interface{}{
		"refreshed": true,
		"models":    s.store.Len(),
	})
}
