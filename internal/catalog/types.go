package catalog

import (
	"time"
)

// ModelType categorizes a model by the modality it serves.
type ModelType string

const (
	ModelTypeText      ModelType = "text"
	ModelTypeImage     ModelType = "image"
	ModelTypeTTS       ModelType = "tts"
	ModelTypeEmbedding ModelType = "embedding"
	ModelTypeUpscale   ModelType = "upscale"
	ModelTypeInpaint   ModelType = "inpaint"
	ModelTypeASR       ModelType = "asr"
	ModelTypeVideo     ModelType = "video"
)

// ModelTypes lists every catalog type in upstream fetch order.
var ModelTypes = []ModelType{
	ModelTypeText,
	ModelTypeImage,
	ModelTypeTTS,
	ModelTypeEmbedding,
	ModelTypeUpscale,
	ModelTypeInpaint,
	ModelTypeASR,
	ModelTypeVideo,
}

// Privacy describes how prompt data is handled for a model.
type Privacy string

const (
	PrivacyPrivate    Privacy = "private"
	PrivacyAnonymized Privacy = "anonymized"
)

// Capabilities holds the boolean capability flags a model may advertise.
type Capabilities struct {
	SupportsFunctionCalling bool `json:"supportsFunctionCalling,omitempty"`
	SupportsReasoning       bool `json:"supportsReasoning,omitempty"`
	SupportsVision          bool `json:"supportsVision,omitempty"`
	OptimizedForCode        bool `json:"optimizedForCode,omitempty"`
}

// Labels returns the display labels for the set capabilities, in the
// canonical order used by text search.
func (c Capabilities) Labels() []string {
	var labels []string
	if c.SupportsFunctionCalling {
		labels = append(labels, "Function Calling")
	}
	if c.SupportsReasoning {
		labels = append(labels, "Reasoning")
	}
	if c.SupportsVision {
		labels = append(labels, "Vision")
	}
	if c.OptimizedForCode {
		labels = append(labels, "Code")
	}
	return labels
}

// VideoModelType distinguishes the two video generation modes.
type VideoModelType string

const (
	TextToVideo  VideoModelType = "text-to-video"
	ImageToVideo VideoModelType = "image-to-video"
)

// Constraints describes the generation parameters a video or image model
// accepts. AspectRatios is always normalized to a slice; the upstream API
// sends either a bare string or an array.
type Constraints struct {
	ModelType         VideoModelType `json:"model_type,omitempty"`
	Resolutions       []string       `json:"resolutions,omitempty"`
	Durations         []string       `json:"durations,omitempty"`
	AspectRatios      []string       `json:"aspect_ratios,omitempty"`
	DefaultResolution string         `json:"defaultResolution,omitempty"`
}

// PricingKind tags the pricing payload variant carried by a record.
type PricingKind string

const (
	// PricingNone means the record carries no applicable inline pricing.
	PricingNone PricingKind = "none"
	// PricingTokenRates is per-1M-token input/output pricing (text, embedding).
	PricingTokenRates PricingKind = "token_rates"
	// PricingImageFlat is a single per-image generation price.
	PricingImageFlat PricingKind = "image_flat"
	// PricingImageResolutions is per-image pricing keyed by resolution label.
	PricingImageResolutions PricingKind = "image_resolutions"
	// PricingUpscale is fixed 2x/4x upscale pricing.
	PricingUpscale PricingKind = "upscale"
	// PricingPerCharacter is per-1M-character pricing (tts).
	PricingPerCharacter PricingKind = "per_character"
	// PricingPerAudioSecond is per-audio-second pricing (asr).
	PricingPerAudioSecond PricingKind = "per_audio_second"
	// PricingInpaint is per-edit pricing (inpaint), defaulting when absent.
	PricingInpaint PricingKind = "inpaint"
	// PricingVideoQuote means the price must be resolved through the quote
	// endpoint; there is no inline price.
	PricingVideoQuote PricingKind = "video_quote"
)

// TokenRates holds per-1M-token USD rates. CacheInput and CacheWrite are nil
// for models without separately billed prompt caching.
type TokenRates struct {
	Input      float64  `json:"input"`
	Output     float64  `json:"output"`
	CacheInput *float64 `json:"cache_input,omitempty"`
	CacheWrite *float64 `json:"cache_write,omitempty"`
}

// ExtendedTier is an alternate token-rate tier that applies above a context
// length threshold. The threshold comparison is the caller's responsibility;
// the catalog only exposes both tiers.
type ExtendedTier struct {
	ContextTokenThreshold int        `json:"context_token_threshold"`
	Rates                 TokenRates `json:"rates"`
}

// Pricing is the tagged union of pricing shapes. Exactly the fields implied
// by Kind are set; an absent field means the price is not applicable to the
// model, not that it is zero. Upscale is populated for any record that
// carries upscale tiers, including image models whose Kind is a generation
// variant.
type Pricing struct {
	Kind           PricingKind        `json:"kind"`
	Tokens         *TokenRates        `json:"tokens,omitempty"`
	Extended       *ExtendedTier      `json:"extended,omitempty"`
	Generation     *float64           `json:"generation,omitempty"`
	Resolutions    map[string]float64 `json:"resolutions,omitempty"`
	Upscale        map[string]float64 `json:"upscale,omitempty"`
	PerCharacter   *float64           `json:"per_character,omitempty"`
	PerAudioSecond *float64           `json:"per_audio_second,omitempty"`
	Inpaint        *float64           `json:"inpaint,omitempty"`
}

// Representative returns the single comparable price used by the price sort
// modes: token input rate, then generation, then per-audio-second, then zero.
func (p Pricing) Representative() float64 {
	switch p.Kind {
	case PricingTokenRates:
		if p.Tokens != nil {
			return p.Tokens.Input
		}
	case PricingPerCharacter:
		if p.PerCharacter != nil {
			return *p.PerCharacter
		}
	case PricingImageFlat:
		if p.Generation != nil {
			return *p.Generation
		}
	case PricingPerAudioSecond:
		if p.PerAudioSecond != nil {
			return *p.PerAudioSecond
		}
	}
	return 0
}

// ModelRecord is one entry in the catalog snapshot. Records are immutable
// once built; the engine only ever reads them.
type ModelRecord struct {
	ID                     string       `json:"id"`
	Type                   ModelType    `json:"type"`
	Name                   string       `json:"name,omitempty"`
	Privacy                Privacy      `json:"privacy,omitempty"`
	Traits                 []string     `json:"traits,omitempty"`
	Capabilities           Capabilities `json:"capabilities"`
	Pricing                Pricing      `json:"pricing"`
	Constraints            *Constraints `json:"constraints,omitempty"`
	AvailableContextTokens int          `json:"availableContextTokens,omitempty"`
	BetaModel              bool         `json:"betaModel,omitempty"`
	DeprecationDate        *time.Time   `json:"deprecationDate,omitempty"`
	Created                int64        `json:"created,omitempty"`
	ModelSource            string       `json:"modelSource,omitempty"`
}

// DisplayName returns the model's display name, falling back to its id.
func (m ModelRecord) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// HasTrait reports whether the record carries the given free-form trait tag.
func (m ModelRecord) HasTrait(trait string) bool {
	for _, t := range m.Traits {
		if t == trait {
			return true
		}
	}
	return false
}
