package pricing

import (
	"github.com/venicelabs/modelcatalog/internal/catalog"
)

// VideoDisplayConfig carries per-model display hints the API cannot express:
// whether an audio toggle changes the price, and whether the resolution
// selection changes the price at all. The hints control which selection
// controls a consumer offers; the resolver accepts any selection regardless.
type VideoDisplayConfig struct {
	AudioPricing           bool `json:"audio_pricing"`
	ResolutionAffectsPrice bool `json:"resolution_affects_price"`
}

// The upstream API's audio_configurable flag only says a toggle exists, not
// that the price changes with it, so these hints are maintained by hand.
var videoModelConfig = map[string]VideoDisplayConfig{
	// Veo 3.1: audio toggle on the text-to-video variants, resolution never
	// affects price.
	"veo3.1-fast-text-to-video":  {AudioPricing: true},
	"veo3.1-full-text-to-video":  {AudioPricing: true},
	"veo3.1-fast-image-to-video": {},
	"veo3.1-full-image-to-video": {},
	// Veo 3: no audio toggle, flat price across resolutions.
	"veo3-fast-text-to-video":  {},
	"veo3-full-text-to-video":  {},
	"veo3-fast-image-to-video": {},
	"veo3-full-image-to-video": {},
	// Kling 2.6 Pro: audio changes the price and so does resolution.
	"kling-2.6-pro-text-to-video": {AudioPricing: true, ResolutionAffectsPrice: true},
	// Sora 2 (non-Pro) only offers 720p.
	"sora-2-text-to-video":  {},
	"sora-2-image-to-video": {},
}

// VideoConfigFor returns the display hints for a video model. Models without
// an entry get the default: no audio pricing, resolution affects price.
func VideoConfigFor(modelID string) VideoDisplayConfig {
	if cfg, ok := videoModelConfig[modelID]; ok {
		return cfg
	}
	return VideoDisplayConfig{ResolutionAffectsPrice: true}
}

// IsFixedPrice reports whether a video model's price cannot vary with the
// exposed selection controls: at most one duration option, and either at
// most one resolution option or a resolution that does not affect price.
// Fixed-price models are eligible for a FIXED display hint.
func IsFixedPrice(m catalog.ModelRecord) bool {
	if m.Type != catalog.ModelTypeVideo {
		return false
	}
	var durations, resolutions int
	if m.Constraints != nil {
		durations = len(m.Constraints.Durations)
		resolutions = len(m.Constraints.Resolutions)
	}
	cfg := VideoConfigFor(m.ID)
	return durations <= 1 && (resolutions <= 1 || !cfg.ResolutionAffectsPrice)
}
