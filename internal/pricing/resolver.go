package pricing

import (
	"context"
	"sort"

	"github.com/venicelabs/modelcatalog/internal/catalog"
)

// Resolver computes a single displayable price for a model given an optional
// selection. Everything except video is resolved synchronously from inline
// pricing; video delegates to the quote client.
type Resolver struct {
	quotes *QuoteClient
}

// NewResolver creates a resolver backed by the given quote client. The quote
// client may be nil for catalogs without video models; video resolution then
// always reports unavailable.
func NewResolver(quotes *QuoteClient) *Resolver {
	return &Resolver{quotes: quotes}
}

// Resolve returns the displayable price for a model under the given
// selection. The second return is false when no price is available: missing
// pricing data, or a failed video quote. It never returns an error; callers
// render the unavailable marker instead.
func (r *Resolver) Resolve(ctx context.Context, m catalog.ModelRecord, sel Selection) (float64, bool) {
	p := m.Pricing
	switch p.Kind {
	case catalog.PricingTokenRates:
		if p.Tokens == nil {
			return 0, false
		}
		return p.Tokens.Input, true

	case catalog.PricingImageFlat:
		if p.Generation == nil {
			return 0, false
		}
		return *p.Generation, true

	case catalog.PricingImageResolutions:
		return resolveResolutionPrice(m, sel.Resolution)

	case catalog.PricingUpscale:
		tier := sel.UpscaleTier
		if tier == "" {
			tier = "2x"
		}
		price, ok := p.Upscale[tier]
		return price, ok

	case catalog.PricingPerCharacter:
		if p.PerCharacter == nil {
			return 0, false
		}
		return *p.PerCharacter, true

	case catalog.PricingPerAudioSecond:
		if p.PerAudioSecond == nil {
			return 0, false
		}
		return *p.PerAudioSecond, true

	case catalog.PricingInpaint:
		if p.Inpaint == nil {
			// Editing has a published flat rate the API does not always carry.
			return 0.04, true
		}
		return *p.Inpaint, true

	case catalog.PricingVideoQuote:
		if r.quotes == nil {
			return 0, false
		}
		return r.quotes.VideoQuote(ctx, m, sel)
	}
	return 0, false
}

// Display renders the resolved price, or the unavailable marker.
func (r *Resolver) Display(ctx context.Context, m catalog.ModelRecord, sel Selection) string {
	price, ok := r.Resolve(ctx, m, sel)
	if !ok {
		return catalog.PriceUnavailable
	}
	return catalog.FormatUSD(price)
}

// TokenPricing exposes a text or embedding model's base token rates and, if
// present, its extended tier. The caller decides which tier applies by
// comparing its context length against the tier's threshold.
func TokenPricing(m catalog.ModelRecord) (base catalog.TokenRates, extended *catalog.ExtendedTier, ok bool) {
	if m.Pricing.Kind != catalog.PricingTokenRates || m.Pricing.Tokens == nil {
		return catalog.TokenRates{}, nil, false
	}
	return *m.Pricing.Tokens, m.Pricing.Extended, true
}

// UpscalePrices returns the fixed upscale tier prices a record carries, in
// either the nested or flattened upstream form.
func UpscalePrices(m catalog.ModelRecord) map[string]float64 {
	return m.Pricing.Upscale
}

// DefaultResolution returns the resolution used when the caller has not
// selected one: the constraints default, then the constraints list head,
// then the lowest-sorted pricing key.
func DefaultResolution(m catalog.ModelRecord) string {
	if m.Constraints != nil {
		if m.Constraints.DefaultResolution != "" {
			return m.Constraints.DefaultResolution
		}
		if len(m.Constraints.Resolutions) > 0 {
			return m.Constraints.Resolutions[0]
		}
	}
	if len(m.Pricing.Resolutions) > 0 {
		keys := make([]string, 0, len(m.Pricing.Resolutions))
		for k := range m.Pricing.Resolutions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys[0]
	}
	return ""
}

func resolveResolutionPrice(m catalog.ModelRecord, resolution string) (float64, bool) {
	if resolution == "" {
		resolution = DefaultResolution(m)
	}
	price, ok := m.Pricing.Resolutions[resolution]
	return price, ok
}
