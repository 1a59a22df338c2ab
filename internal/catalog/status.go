package catalog

import (
	"strings"
	"time"
)

// Model types that are always treated as private regardless of the privacy
// field the API reports.
var alwaysPrivateTypes = map[ModelType]bool{
	ModelTypeUpscale: true,
}

// TraitMostUncensored is the trait tag marking a model as uncensored.
const TraitMostUncensored = "most_uncensored"

// IsAnonymized reports whether the provider retains (anonymized) prompt data
// for this model. Types in the always-private set report false regardless of
// the record's privacy field.
func IsAnonymized(m ModelRecord) bool {
	if alwaysPrivateTypes[m.Type] {
		return false
	}
	return m.Privacy == PrivacyAnonymized
}

// IsBeta reports whether the model is flagged experimental.
func IsBeta(m ModelRecord) bool {
	return m.BetaModel
}

// IsDeprecated reports whether the model has a scheduled removal date.
func IsDeprecated(m ModelRecord) bool {
	return m.DeprecationDate != nil
}

// IsUncensored reports whether the model is uncensored: either tagged with
// the most_uncensored trait, or matched by id substring. The substring match
// is a deliberate heuristic carried from the upstream catalog, which has no
// explicit trait on every uncensored model; it will misclassify any future
// model whose id happens to contain one of these fragments.
func IsUncensored(m ModelRecord) bool {
	if m.HasTrait(TraitMostUncensored) {
		return true
	}
	id := strings.ToLower(m.ID)
	return strings.Contains(id, "uncensored") || strings.Contains(id, "lustify")
}

// IsNew reports whether the model was added within the last 30 days.
func IsNew(m ModelRecord) bool {
	return isNewAt(m, time.Now())
}

func isNewAt(m ModelRecord, now time.Time) bool {
	if m.Created == 0 {
		return false
	}
	added := time.Unix(m.Created, 0)
	return now.Sub(added) <= 30*24*time.Hour
}

// DeprecationState describes where a model stands in its removal lifecycle.
type DeprecationState string

const (
	// DeprecationNone means no removal is scheduled.
	DeprecationNone DeprecationState = ""
	// DeprecationRetiring means the removal date is still in the future.
	DeprecationRetiring DeprecationState = "retiring"
	// DeprecationDeprecated means the removal date has passed within the
	// last 30 days.
	DeprecationDeprecated DeprecationState = "deprecated"
	// DeprecationExpired means the removal date is more than 30 days past.
	DeprecationExpired DeprecationState = "expired"
)

// DeprecationStatus classifies a removal date against the current time.
func DeprecationStatus(date *time.Time) DeprecationState {
	return deprecationStatusAt(date, time.Now())
}

func deprecationStatusAt(date *time.Time, now time.Time) DeprecationState {
	if date == nil {
		return DeprecationNone
	}
	if now.Before(*date) {
		return DeprecationRetiring
	}
	if !now.After(date.Add(30 * 24 * time.Hour)) {
		return DeprecationDeprecated
	}
	return DeprecationExpired
}

// RateLimitTier buckets text and embedding models by default rate limits.
type RateLimitTier string

const (
	TierXSmall RateLimitTier = "xsmall"
	TierSmall  RateLimitTier = "small"
	TierMedium RateLimitTier = "medium"
	TierLarge  RateLimitTier = "large"
)

// RateLimits holds the request and token limits for a tier.
type RateLimits struct {
	RPM   int
	TPM   int
	Label string
}

var rateLimitTiers = map[RateLimitTier]RateLimits{
	TierXSmall: {RPM: 500, TPM: 1000000, Label: "XS"},
	TierSmall:  {RPM: 75, TPM: 750000, Label: "S"},
	TierMedium: {RPM: 50, TPM: 750000, Label: "M"},
	TierLarge:  {RPM: 20, TPM: 500000, Label: "L"},
}

// Tier assignments cannot be derived from the API; they mirror the published
// rate limit documentation.
var modelRateLimitTier = map[string]RateLimitTier{
	"qwen3-4b":                      TierXSmall,
	"llama-3.2-3b":                  TierXSmall,
	"text-embedding-bge-m3":         TierXSmall,
	"mistral-31-24b":                TierSmall,
	"venice-uncensored":             TierSmall,
	"llama-3.3-70b":                 TierMedium,
	"qwen3-next-80b":                TierMedium,
	"google-gemma-3-27b-it":         TierMedium,
	"qwen3-235b":                    TierLarge,
	"qwen3-235b-a22b-instruct-2507": TierLarge,
	"qwen3-235b-a22b-thinking-2507": TierLarge,
	"grok-41-fast":                  TierLarge,
	"kimi-k2-thinking":              TierLarge,
	"gemini-3-pro-preview":          TierLarge,
	"hermes-3-llama-3.1-405b":       TierLarge,
	"qwen3-coder-480b-a35b-instruct": TierLarge,
	"zai-org-glm-4.7":               TierLarge,
	"openai-gpt-oss-120b":           TierLarge,
}

// RateLimitTierFor returns the rate limit tier for a model. Only text and
// embedding models are tiered; unknown text models default to large.
func RateLimitTierFor(m ModelRecord) (RateLimitTier, bool) {
	if m.Type != ModelTypeText && m.Type != ModelTypeEmbedding {
		return "", false
	}
	if tier, ok := modelRateLimitTier[m.ID]; ok {
		return tier, true
	}
	return TierLarge, true
}

// LimitsFor returns the limits associated with a tier.
func LimitsFor(tier RateLimitTier) (RateLimits, bool) {
	l, ok := rateLimitTiers[tier]
	return l, ok
}
