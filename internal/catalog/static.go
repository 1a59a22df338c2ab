package catalog

// Static fallback snapshot, used when neither the cache nor the upstream API
// can supply a catalog. Shape-compatible with a fetched snapshot; refreshed
// by hand when the published catalog changes materially.

func usd(v float64) *float64 { return &v }

// StaticFallback returns the baked-in catalog snapshot. Each call returns a
// fresh slice so callers cannot corrupt the fallback data.
func StaticFallback() []ModelRecord {
	return []ModelRecord{
		{
			ID: "text-embedding-bge-m3", Type: ModelTypeEmbedding, Name: "BGE-M3",
			Privacy: PrivacyPrivate,
			Pricing: Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{Input: 0.15, Output: 0.6}},
		},
		{
			ID: "upscaler", Type: ModelTypeUpscale, Name: "Upscaler",
			Privacy: PrivacyPrivate,
			Pricing: Pricing{Kind: PricingUpscale, Upscale: map[string]float64{"2x": 0.02, "4x": 0.08}},
		},
		{
			ID: "nvidia/parakeet-tdt-0.6b-v3", Type: ModelTypeASR, Name: "Parakeet ASR",
			Privacy: PrivacyPrivate,
			Pricing: Pricing{Kind: PricingPerAudioSecond, PerAudioSecond: usd(0.0001)},
		},
		{
			ID: "qwen-edit", Type: ModelTypeInpaint, Name: "Qwen Edit 2511",
			Privacy: PrivacyPrivate,
			Pricing: Pricing{Kind: PricingInpaint},
		},
		{
			ID: "venice-sd35", Type: ModelTypeImage, Name: "Venice SD35",
			Privacy: PrivacyPrivate, Traits: []string{"eliza-default"},
			Pricing: Pricing{
				Kind: PricingImageFlat, Generation: usd(0.01),
				Upscale: map[string]float64{"2x": 0.02, "4x": 0.08},
			},
		},
		{
			ID: "flux-2-pro", Type: ModelTypeImage, Name: "Flux 2 Pro",
			Privacy: PrivacyAnonymized,
			Pricing: Pricing{
				Kind: PricingImageFlat, Generation: usd(0.04),
				Upscale: map[string]float64{"2x": 0.02, "4x": 0.08},
			},
		},
		{
			ID: "nano-banana-pro", Type: ModelTypeImage, Name: "Nano Banana Pro",
			Privacy: PrivacyAnonymized,
			Pricing: Pricing{
				Kind:        PricingImageResolutions,
				Resolutions: map[string]float64{"1K": 0.18, "2K": 0.24, "4K": 0.35},
				Upscale:     map[string]float64{"2x": 0.02, "4x": 0.08},
			},
		},
		{
			ID: "lustify-v7", Type: ModelTypeImage, Name: "Lustify v7",
			Privacy: PrivacyPrivate, Traits: []string{TraitMostUncensored},
			Pricing: Pricing{
				Kind: PricingImageFlat, Generation: usd(0.01),
				Upscale: map[string]float64{"2x": 0.02, "4x": 0.08},
			},
		},
		{
			ID: "qwen-image", Type: ModelTypeImage, Name: "Qwen Image",
			Privacy: PrivacyPrivate, Traits: []string{"highest_quality"},
			Pricing: Pricing{
				Kind: PricingImageFlat, Generation: usd(0.01),
				Upscale: map[string]float64{"2x": 0.02, "4x": 0.08},
			},
		},
		{
			ID: "z-image-turbo", Type: ModelTypeImage, Name: "Z-Image Turbo",
			Privacy: PrivacyPrivate, Traits: []string{"default", "fastest"},
			Pricing: Pricing{
				Kind: PricingImageFlat, Generation: usd(0.01),
				Upscale: map[string]float64{"2x": 0.02, "4x": 0.08},
			},
		},
		{
			ID: "wan-2.6-text-to-video", Type: ModelTypeVideo, Name: "Wan 2.6",
			Privacy: PrivacyAnonymized,
			Pricing: Pricing{Kind: PricingVideoQuote},
		},
		{
			ID: "wan-2.6-image-to-video", Type: ModelTypeVideo, Name: "Wan 2.6",
			Privacy: PrivacyAnonymized,
			Pricing: Pricing{Kind: PricingVideoQuote},
		},
		{
			ID: "ltx-2-fast-text-to-video", Type: ModelTypeVideo, Name: "LTX Video 2.0 Fast",
			Privacy: PrivacyAnonymized,
			Pricing: Pricing{Kind: PricingVideoQuote},
		},
		{
			ID: "kling-2.6-pro-text-to-video", Type: ModelTypeVideo, Name: "Kling 2.6 Pro",
			Privacy: PrivacyAnonymized,
			Pricing: Pricing{Kind: PricingVideoQuote},
		},
		{
			ID: "veo3-fast-text-to-video", Type: ModelTypeVideo, Name: "Veo 3 Fast",
			Privacy: PrivacyAnonymized,
			Pricing: Pricing{Kind: PricingVideoQuote},
		},
		{
			ID: "veo3.1-fast-text-to-video", Type: ModelTypeVideo, Name: "Veo 3.1 Fast",
			Privacy: PrivacyAnonymized,
			Pricing: Pricing{Kind: PricingVideoQuote},
		},
		{
			ID: "sora-2-text-to-video", Type: ModelTypeVideo, Name: "Sora 2",
			Privacy: PrivacyAnonymized,
			Pricing: Pricing{Kind: PricingVideoQuote},
		},
		{
			ID: "sora-2-pro-image-to-video", Type: ModelTypeVideo, Name: "Sora 2 Pro",
			Privacy: PrivacyAnonymized,
			Pricing: Pricing{Kind: PricingVideoQuote},
		},
		{
			ID: "tts-kokoro", Type: ModelTypeTTS, Name: "Kokoro Text to Speech",
			Privacy: PrivacyPrivate,
			Pricing: Pricing{Kind: PricingPerCharacter, PerCharacter: usd(3.5)},
		},
		{
			ID: "venice-uncensored", Type: ModelTypeText, Name: "Venice Uncensored 1.1",
			Privacy: PrivacyPrivate, Traits: []string{TraitMostUncensored},
			AvailableContextTokens: 32768,
			Pricing:                Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{Input: 0.2, Output: 0.9}},
		},
		{
			ID: "zai-org-glm-4.7", Type: ModelTypeText, Name: "GLM 4.7",
			Privacy: PrivacyPrivate, Traits: []string{"default", "most_intelligent"},
			AvailableContextTokens: 202752,
			Capabilities:           Capabilities{SupportsFunctionCalling: true, SupportsReasoning: true},
			Pricing: Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{
				Input: 0.55, Output: 2.65, CacheInput: usd(0.11),
			}},
		},
		{
			ID: "qwen3-4b", Type: ModelTypeText, Name: "Venice Small",
			Privacy: PrivacyPrivate, Traits: []string{"fastest"},
			AvailableContextTokens: 32768,
			Capabilities:           Capabilities{SupportsFunctionCalling: true, SupportsReasoning: true},
			Pricing:                Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{Input: 0.05, Output: 0.15}},
		},
		{
			ID: "mistral-31-24b", Type: ModelTypeText, Name: "Venice Medium",
			Privacy: PrivacyPrivate, Traits: []string{"default_vision", "function_calling_default"},
			AvailableContextTokens: 131072,
			Capabilities:           Capabilities{SupportsFunctionCalling: true, SupportsVision: true},
			Pricing:                Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{Input: 0.5, Output: 2}},
		},
		{
			ID: "qwen3-coder-480b-a35b-instruct", Type: ModelTypeText, Name: "Qwen 3 Coder 480b",
			Privacy: PrivacyPrivate, Traits: []string{"default_code"},
			AvailableContextTokens: 262144,
			Capabilities:           Capabilities{OptimizedForCode: true, SupportsFunctionCalling: true},
			Pricing:                Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{Input: 0.75, Output: 3}},
		},
		{
			ID: "qwen3-next-80b", Type: ModelTypeText, Name: "Qwen 3 Next 80b",
			Privacy: PrivacyPrivate, BetaModel: true,
			AvailableContextTokens: 262144,
			Capabilities:           Capabilities{SupportsFunctionCalling: true},
			Pricing:                Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{Input: 0.35, Output: 1.9}},
		},
		{
			ID: "grok-41-fast", Type: ModelTypeText, Name: "Grok 4.1 Fast",
			Privacy:                PrivacyAnonymized,
			AvailableContextTokens: 262144,
			Capabilities:           Capabilities{SupportsFunctionCalling: true, SupportsReasoning: true, SupportsVision: true},
			Pricing: Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{
				Input: 0.5, Output: 1.25, CacheInput: usd(0.125),
			}},
		},
		{
			ID: "claude-opus-45", Type: ModelTypeText, Name: "Claude Opus 4.5",
			Privacy:                PrivacyAnonymized,
			AvailableContextTokens: 202752,
			Capabilities:           Capabilities{OptimizedForCode: true, SupportsFunctionCalling: true, SupportsReasoning: true, SupportsVision: true},
			Pricing: Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{
				Input: 6, Output: 30, CacheInput: usd(0.6), CacheWrite: usd(7.5),
			}},
		},
		{
			ID: "deepseek-v3.2", Type: ModelTypeText, Name: "DeepSeek V3.2",
			Privacy:                PrivacyPrivate,
			AvailableContextTokens: 163840,
			Capabilities:           Capabilities{SupportsReasoning: true},
			Pricing: Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{
				Input: 0.4, Output: 1, CacheInput: usd(0.2),
			}},
		},
		{
			ID: "llama-3.3-70b", Type: ModelTypeText, Name: "Llama 3.3 70B",
			Privacy:                PrivacyPrivate,
			AvailableContextTokens: 131072,
			Capabilities:           Capabilities{SupportsFunctionCalling: true},
			Pricing:                Pricing{Kind: PricingTokenRates, Tokens: &TokenRates{Input: 0.7, Output: 2.8}},
		},
	}
}
