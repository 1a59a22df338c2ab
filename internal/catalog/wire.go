package catalog

import (
	"encoding/json"
	"fmt"
	"time"
)

// The upstream models API returns duck-typed JSON: pricing fields vary by
// model type, upscale tiers appear nested or flattened, and aspect ratios
// arrive as either a string or an array. The wire types below absorb those
// shapes; Normalize converts them into the tagged Pricing union.

type usdValue struct {
	USD float64 `json:"usd"`
}

type stringOrList []string

func (s *stringOrList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*s = nil
		} else {
			*s = []string{single}
		}
		return nil
	}
	// Unexpected shape degrades to empty rather than failing the decode.
	*s = nil
	return nil
}

type apiExtendedTier struct {
	ContextTokenThreshold int       `json:"context_token_threshold"`
	Input                 *usdValue `json:"input"`
	Output                *usdValue `json:"output"`
	CacheInput            *usdValue `json:"cache_input"`
	CacheWrite            *usdValue `json:"cache_write"`
}

type apiPricing struct {
	Input          *usdValue           `json:"input"`
	Output         *usdValue           `json:"output"`
	CacheInput     *usdValue           `json:"cache_input"`
	CacheWrite     *usdValue           `json:"cache_write"`
	Extended       *apiExtendedTier    `json:"extended"`
	Generation     *usdValue           `json:"generation"`
	Resolutions    map[string]usdValue `json:"resolutions"`
	Upscale        map[string]usdValue `json:"upscale"`
	PerAudioSecond *usdValue           `json:"per_audio_second"`
	Inpaint        *usdValue           `json:"inpaint"`

	// Flattened upscale tiers, seen on some catalog snapshots.
	TwoX  *usdValue `json:"2x"`
	FourX *usdValue `json:"4x"`
}

type apiConstraints struct {
	ModelType         string       `json:"model_type"`
	Resolutions       []string     `json:"resolutions"`
	Durations         []string     `json:"durations"`
	AspectRatios      stringOrList `json:"aspect_ratios"`
	DefaultResolution string       `json:"defaultResolution"`
}

type apiDeprecation struct {
	Date string `json:"date"`
}

type apiModelSpec struct {
	Name                   string          `json:"name"`
	Privacy                string          `json:"privacy"`
	Traits                 []string        `json:"traits"`
	Capabilities           *Capabilities   `json:"capabilities"`
	Pricing                apiPricing      `json:"pricing"`
	Constraints            *apiConstraints `json:"constraints"`
	AvailableContextTokens int             `json:"availableContextTokens"`
	BetaModel              bool            `json:"betaModel"`
	Deprecation            *apiDeprecation `json:"deprecation"`
	ModelSource            string          `json:"modelSource"`
}

// APIModel is one model entry as served by the upstream catalog endpoint.
type APIModel struct {
	ID      string       `json:"id"`
	Type    string       `json:"type"`
	Created int64        `json:"created"`
	Spec    apiModelSpec `json:"model_spec"`
}

// APIEnvelope is the response body of the catalog endpoint.
type APIEnvelope struct {
	Data []APIModel `json:"data"`
}

// DecodeRecords parses a catalog API response body into normalized records.
func DecodeRecords(body []byte) ([]ModelRecord, error) {
	var env APIEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode models response: %w", err)
	}
	records := make([]ModelRecord, 0, len(env.Data))
	for _, m := range env.Data {
		records = append(records, Normalize(m))
	}
	return records, nil
}

// Normalize converts a wire model into a ModelRecord with typed pricing.
// Malformed or missing optional fields degrade to absent, never to an error.
func Normalize(m APIModel) ModelRecord {
	spec := m.Spec
	rec := ModelRecord{
		ID:                     m.ID,
		Type:                   ModelType(m.Type),
		Name:                   spec.Name,
		Privacy:                Privacy(spec.Privacy),
		Traits:                 spec.Traits,
		AvailableContextTokens: spec.AvailableContextTokens,
		BetaModel:              spec.BetaModel,
		Created:                m.Created,
		ModelSource:            spec.ModelSource,
	}
	if spec.Capabilities != nil {
		rec.Capabilities = *spec.Capabilities
	}
	if spec.Constraints != nil {
		rec.Constraints = &Constraints{
			ModelType:         VideoModelType(spec.Constraints.ModelType),
			Resolutions:       spec.Constraints.Resolutions,
			Durations:         spec.Constraints.Durations,
			AspectRatios:      spec.Constraints.AspectRatios,
			DefaultResolution: spec.Constraints.DefaultResolution,
		}
	}
	if spec.Deprecation != nil {
		if t, ok := parseDeprecationDate(spec.Deprecation.Date); ok {
			rec.DeprecationDate = &t
		}
	}
	rec.Pricing = normalizePricing(rec.Type, spec.Pricing)
	return rec
}

func parseDeprecationDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func usdPtr(v *usdValue) *float64 {
	if v == nil {
		return nil
	}
	u := v.USD
	return &u
}

func usdMap(m map[string]usdValue) map[string]float64 {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v.USD
	}
	return out
}

func tokenRates(p apiPricing) *TokenRates {
	if p.Input == nil || p.Output == nil {
		return nil
	}
	return &TokenRates{
		Input:      p.Input.USD,
		Output:     p.Output.USD,
		CacheInput: usdPtr(p.CacheInput),
		CacheWrite: usdPtr(p.CacheWrite),
	}
}

func normalizePricing(typ ModelType, p apiPricing) Pricing {
	switch typ {
	case ModelTypeText, ModelTypeEmbedding:
		rates := tokenRates(p)
		if rates == nil {
			return Pricing{Kind: PricingNone}
		}
		pr := Pricing{Kind: PricingTokenRates, Tokens: rates}
		if p.Extended != nil && p.Extended.Input != nil && p.Extended.Output != nil {
			pr.Extended = &ExtendedTier{
				ContextTokenThreshold: p.Extended.ContextTokenThreshold,
				Rates: TokenRates{
					Input:      p.Extended.Input.USD,
					Output:     p.Extended.Output.USD,
					CacheInput: usdPtr(p.Extended.CacheInput),
					CacheWrite: usdPtr(p.Extended.CacheWrite),
				},
			}
		}
		return pr

	case ModelTypeImage:
		pr := Pricing{Upscale: upscaleTiers(p)}
		switch {
		case len(p.Resolutions) > 0:
			pr.Kind = PricingImageResolutions
			pr.Resolutions = usdMap(p.Resolutions)
		case p.Generation != nil:
			pr.Kind = PricingImageFlat
			pr.Generation = usdPtr(p.Generation)
		default:
			pr.Kind = PricingNone
		}
		return pr

	case ModelTypeUpscale:
		return Pricing{Kind: PricingUpscale, Upscale: upscaleTiers(p)}

	case ModelTypeTTS:
		if p.Input == nil {
			return Pricing{Kind: PricingNone}
		}
		return Pricing{Kind: PricingPerCharacter, PerCharacter: usdPtr(p.Input)}

	case ModelTypeASR:
		// Per-audio-second is the native shape; older snapshots expose the
		// rate under input instead.
		if p.PerAudioSecond != nil {
			return Pricing{Kind: PricingPerAudioSecond, PerAudioSecond: usdPtr(p.PerAudioSecond)}
		}
		if p.Input != nil {
			return Pricing{Kind: PricingPerAudioSecond, PerAudioSecond: usdPtr(p.Input)}
		}
		return Pricing{Kind: PricingNone}

	case ModelTypeInpaint:
		return Pricing{Kind: PricingInpaint, Inpaint: usdPtr(p.Inpaint)}

	case ModelTypeVideo:
		return Pricing{Kind: PricingVideoQuote}
	}
	return Pricing{Kind: PricingNone}
}

// upscaleTiers prefers the nested upscale object and falls back to the
// flattened 2x/4x keys.
func upscaleTiers(p apiPricing) map[string]float64 {
	if len(p.Upscale) > 0 {
		return usdMap(p.Upscale)
	}
	out := make(map[string]float64, 2)
	if p.TwoX != nil {
		out["2x"] = p.TwoX.USD
	}
	if p.FourX != nil {
		out["4x"] = p.FourX.USD
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
