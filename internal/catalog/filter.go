package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Category selects a broad model grouping. The five non-all categories
// partition the catalog by type.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryText      Category = "text"
	CategoryImage     Category = "image"
	CategoryVideo     Category = "video"
	CategoryAudio     Category = "audio"
	CategoryEmbedding Category = "embedding"
)

// CapabilityFilter selects models by one advertised capability.
type CapabilityFilter string

const (
	CapabilityReasoning CapabilityFilter = "reasoning"
	CapabilityVision    CapabilityFilter = "vision"
	CapabilityFunction  CapabilityFilter = "function"
	CapabilityCode      CapabilityFilter = "code"
)

// ImageFilter narrows the image category to a workflow.
type ImageFilter string

const (
	ImageGen        ImageFilter = "image-gen"
	ImageUpscale    ImageFilter = "image-upscale"
	ImageEdit       ImageFilter = "image-edit"
	ImageUncensored ImageFilter = "image-uncensored"
)

// SortMode orders filter results.
type SortMode string

const (
	SortDefault   SortMode = "default"
	SortNewest    SortMode = "newest"
	SortOldest    SortMode = "oldest"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortName      SortMode = "name"
)

// QueryState is one filter/search/sort request. Zero values mean "match
// everything" for each selector; Category treats "" and "all" the same.
type QueryState struct {
	Query      string           `json:"query,omitempty"`
	Category   Category         `json:"category,omitempty"`
	Capability CapabilityFilter `json:"capability,omitempty"`
	VideoType  VideoModelType   `json:"video_type,omitempty"`
	ImageType  ImageFilter      `json:"image_type,omitempty"`
	Sort       SortMode         `json:"sort,omitempty"`
}

// Filter returns the records matching every active selector of state,
// ordered by its sort mode. The input slice is never mutated; the result is
// always a fresh slice. A record with malformed or missing optional fields
// simply fails the predicates that need them.
//
// An unrecognized selector value matches nothing. The upstream widget
// silently matched everything in that case, which hid typos; failing closed
// makes a bad filter visible as an empty result instead.
func Filter(records []ModelRecord, state QueryState) []ModelRecord {
	query := strings.ToLower(strings.TrimSpace(state.Query))

	filtered := make([]ModelRecord, 0, len(records))
	for _, rec := range records {
		if matchesSearch(rec, query) &&
			matchesCategory(rec, state.Category) &&
			matchesCapability(rec, state.Capability) &&
			matchesVideoType(rec, state.VideoType) &&
			matchesImageType(rec, state.ImageType) {
			filtered = append(filtered, rec)
		}
	}
	sortRecords(filtered, state.Sort)
	return filtered
}

// matchesSearch reports whether the query occurs in the record's name, id,
// or one of its capability labels, case-insensitively.
func matchesSearch(m ModelRecord, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.DisplayName()), query) {
		return true
	}
	if strings.Contains(strings.ToLower(m.ID), query) {
		return true
	}
	for _, label := range m.Capabilities.Labels() {
		if strings.Contains(strings.ToLower(label), query) {
			return true
		}
	}
	return false
}

func matchesCategory(m ModelRecord, category Category) bool {
	switch category {
	case "", CategoryAll:
		return true
	case CategoryText:
		return m.Type == ModelTypeText
	case CategoryImage:
		return m.Type == ModelTypeImage || m.Type == ModelTypeUpscale || m.Type == ModelTypeInpaint
	case CategoryVideo:
		return m.Type == ModelTypeVideo
	case CategoryAudio:
		return m.Type == ModelTypeTTS || m.Type == ModelTypeASR
	case CategoryEmbedding:
		return m.Type == ModelTypeEmbedding
	}
	return false
}

func matchesCapability(m ModelRecord, capability CapabilityFilter) bool {
	switch capability {
	case "":
		return true
	case CapabilityReasoning:
		return m.Capabilities.SupportsReasoning
	case CapabilityVision:
		return m.Capabilities.SupportsVision
	case CapabilityFunction:
		return m.Capabilities.SupportsFunctionCalling
	case CapabilityCode:
		return MatchesCodeFilter(m)
	}
	return false
}

// MatchesCodeFilter reports whether a model counts as code-optimized: the
// explicit capability flag, or an id containing "coder" or "grok". The id
// heuristic covers models the upstream API does not flag; it is kept from
// the original catalog and will match unrelated future ids containing those
// fragments.
func MatchesCodeFilter(m ModelRecord) bool {
	if m.Capabilities.OptimizedForCode {
		return true
	}
	id := strings.ToLower(m.ID)
	return strings.Contains(id, "coder") || strings.Contains(id, "grok")
}

func matchesVideoType(m ModelRecord, videoType VideoModelType) bool {
	if videoType == "" {
		return true
	}
	return m.Constraints != nil && m.Constraints.ModelType == videoType
}

func matchesImageType(m ModelRecord, imageType ImageFilter) bool {
	id := strings.ToLower(m.ID)
	switch imageType {
	case "":
		return true
	case ImageGen:
		// qwen-image is surfaced under Edit, not Generation.
		return m.Type == ModelTypeImage && !strings.Contains(id, "qwen")
	case ImageUpscale:
		return m.Type == ModelTypeUpscale
	case ImageEdit:
		return m.Type == ModelTypeInpaint || strings.Contains(id, "qwen-image")
	case ImageUncensored:
		return IsUncensored(m)
	}
	return false
}

func sortRecords(records []ModelRecord, mode SortMode) {
	switch mode {
	case SortNewest:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Created > records[j].Created
		})
	case SortOldest:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Created < records[j].Created
		})
	case SortPriceLow:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Pricing.Representative() < records[j].Pricing.Representative()
		})
	case SortPriceHigh:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Pricing.Representative() > records[j].Pricing.Representative()
		})
	case SortName:
		// Collators are not safe for concurrent use; build one per sort.
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(records, func(i, j int) bool {
			return c.CompareString(records[i].DisplayName(), records[j].DisplayName()) < 0
		})
	default:
		// SortDefault keeps catalog arrival order.
	}
}
