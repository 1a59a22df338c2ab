package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecordsTextModel(t *testing.T) {
	body := []byte(`{"data":[{
		"id": "qwen3-235b",
		"type": "text",
		"created": 1744928000,
		"model_spec": {
			"name": "Venice Large",
			"privacy": "private",
			"traits": ["default_reasoning"],
			"availableContextTokens": 131072,
			"capabilities": {"supportsFunctionCalling": true, "supportsReasoning": true},
			"pricing": {
				"input": {"usd": 1.5},
				"output": {"usd": 6.0},
				"extended": {
					"context_token_threshold": 128000,
					"input": {"usd": 3.0},
					"output": {"usd": 12.0}
				}
			}
		}
	}]}`)

	records, err := DecodeRecords(body)
	require.NoError(t, err)
	require.Len(t, records, 1)

	m := records[0]
	assert.Equal(t, "qwen3-235b", m.ID)
	assert.Equal(t, ModelTypeText, m.Type)
	assert.Equal(t, "Venice Large", m.Name)
	assert.True(t, m.Capabilities.SupportsReasoning)
	assert.Equal(t, 131072, m.AvailableContextTokens)

	require.Equal(t, PricingTokenRates, m.Pricing.Kind)
	require.NotNil(t, m.Pricing.Tokens)
	assert.Equal(t, 1.5, m.Pricing.Tokens.Input)
	assert.Equal(t, 6.0, m.Pricing.Tokens.Output)
	require.NotNil(t, m.Pricing.Extended)
	assert.Equal(t, 128000, m.Pricing.Extended.ContextTokenThreshold)
	assert.Equal(t, 3.0, m.Pricing.Extended.Rates.Input)
}

func TestDecodeRecordsFlattenedUpscaleTiers(t *testing.T) {
	body := []byte(`{"data":[{
		"id": "upscaler",
		"type": "upscale",
		"model_spec": {
			"name": "Upscaler",
			"pricing": {"2x": {"usd": 0.02}, "4x": {"usd": 0.08}}
		}
	}]}`)

	records, err := DecodeRecords(body)
	require.NoError(t, err)
	require.Len(t, records, 1)

	p := records[0].Pricing
	assert.Equal(t, PricingUpscale, p.Kind)
	assert.Equal(t, map[string]float64{"2x": 0.02, "4x": 0.08}, p.Upscale)
}

func TestDecodeRecordsNestedUpscalePreferred(t *testing.T) {
	body := []byte(`{"data":[{
		"id": "upscaler",
		"type": "upscale",
		"model_spec": {
			"pricing": {
				"upscale": {"2x": {"usd": 0.03}},
				"2x": {"usd": 0.99}
			}
		}
	}]}`)

	records, err := DecodeRecords(body)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2x": 0.03}, records[0].Pricing.Upscale)
}

func TestDecodeRecordsImageResolutions(t *testing.T) {
	body := []byte(`{"data":[{
		"id": "nano-banana-pro",
		"type": "image",
		"model_spec": {
			"pricing": {
				"resolutions": {"1K": {"usd": 0.18}, "2K": {"usd": 0.24}, "4K": {"usd": 0.35}},
				"upscale": {"2x": {"usd": 0.02}, "4x": {"usd": 0.08}}
			}
		}
	}]}`)

	records, err := DecodeRecords(body)
	require.NoError(t, err)

	p := records[0].Pricing
	assert.Equal(t, PricingImageResolutions, p.Kind)
	assert.Equal(t, 0.24, p.Resolutions["2K"])
	assert.Equal(t, 0.08, p.Upscale["4x"], "image models keep their upscale tiers alongside generation pricing")
}

func TestDecodeRecordsASRInputFallback(t *testing.T) {
	body := []byte(`{"data":[{
		"id": "nvidia/parakeet-tdt-0.6b-v3",
		"type": "asr",
		"model_spec": {"pricing": {"input": {"usd": 0.0001}}}
	}]}`)

	records, err := DecodeRecords(body)
	require.NoError(t, err)

	p := records[0].Pricing
	require.Equal(t, PricingPerAudioSecond, p.Kind)
	require.NotNil(t, p.PerAudioSecond)
	assert.Equal(t, 0.0001, *p.PerAudioSecond)
}

func TestDecodeRecordsAspectRatioString(t *testing.T) {
	body := []byte(`{"data":[{
		"id": "sora-2-text-to-video",
		"type": "video",
		"model_spec": {
			"constraints": {
				"model_type": "text-to-video",
				"resolutions": ["720p"],
				"durations": ["4s", "8s", "12s"],
				"aspect_ratios": "16:9"
			},
			"pricing": {}
		}
	}]}`)

	records, err := DecodeRecords(body)
	require.NoError(t, err)

	m := records[0]
	assert.Equal(t, PricingVideoQuote, m.Pricing.Kind)
	require.NotNil(t, m.Constraints)
	assert.Equal(t, TextToVideo, m.Constraints.ModelType)
	assert.Equal(t, []string{"16:9"}, m.Constraints.AspectRatios)
}

func TestDecodeRecordsAspectRatioGarbage(t *testing.T) {
	body := []byte(`{"data":[{
		"id": "x",
		"type": "video",
		"model_spec": {
			"constraints": {"aspect_ratios": 42},
			"pricing": {}
		}
	}]}`)

	records, err := DecodeRecords(body)
	require.NoError(t, err, "malformed optional fields must not fail the decode")
	assert.Empty(t, records[0].Constraints.AspectRatios)
}

func TestDecodeRecordsDeprecationDate(t *testing.T) {
	body := []byte(`{"data":[
		{"id": "a", "type": "text", "model_spec": {
			"pricing": {"input": {"usd": 1}, "output": {"usd": 2}},
			"deprecation": {"date": "2026-01-31"}
		}},
		{"id": "b", "type": "text", "model_spec": {
			"pricing": {"input": {"usd": 1}, "output": {"usd": 2}},
			"deprecation": {"date": "not a date"}
		}}
	]}`)

	records, err := DecodeRecords(body)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].DeprecationDate)
	assert.Equal(t, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), *records[0].DeprecationDate)
	assert.Nil(t, records[1].DeprecationDate, "unparseable dates degrade to absent")
}

func TestNormalizeTextWithoutPricing(t *testing.T) {
	rec := Normalize(APIModel{ID: "x", Type: "text"})
	assert.Equal(t, PricingNone, rec.Pricing.Kind)
}

func TestNormalizeInpaintKeepsNilPrice(t *testing.T) {
	rec := Normalize(APIModel{ID: "qwen-edit", Type: "inpaint"})
	assert.Equal(t, PricingInpaint, rec.Pricing.Kind)
	assert.Nil(t, rec.Pricing.Inpaint, "resolver supplies the published default")
}
