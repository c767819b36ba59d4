package scoring

import (
	"encoding/json"
)

// HealthLevel is the qualitative classification of a score band.
type HealthLevel string

const (
	HealthLevelLow    HealthLevel = "low"
	HealthLevelMedium HealthLevel = "medium"
	HealthLevelHigh   HealthLevel = "high"
)

// Overall health cutoffs on the 0-100 percentage scale. These are a separate
// scheme from the per-category band table and must stay separate; the
// business rule behind the difference predates this codebase.
const (
	overallHighCutoff   = 70
	overallMediumCutoff = 40
)

// HealthLabel is the presentation companion of a health level. The
// HealthLevel field must always carry the level verbatim, since report
// selection downstream keys off it.
type HealthLabel struct {
	HealthLevel HealthLevel `json:"healthLevel"`
	Label       string      `json:"label"`
	ShortLabel  string      `json:"shortLabel"`
	Color       string      `json:"color"`
}

var healthLabels = map[HealthLevel]HealthLabel{
	HealthLevelLow:    {HealthLevel: HealthLevelLow, Label: "Unhealthy", ShortLabel: "Low", Color: "red"},
	HealthLevelMedium: {HealthLevel: HealthLevelMedium, Label: "Needs Tweaking", ShortLabel: "Medium", Color: "amber"},
	HealthLevelHigh:   {HealthLevel: HealthLevelHigh, Label: "Healthy", ShortLabel: "High", Color: "green"},
}

// HealthLabelFor returns the presentation label for a health level,
// defaulting to the low label for anything unrecognized.
func HealthLabelFor(level HealthLevel) HealthLabel {
	if label, ok := healthLabels[level]; ok {
		return label
	}
	return healthLabels[HealthLevelLow]
}

// CategoryAnalytics is the derived analytics for one category score.
type CategoryAnalytics struct {
	RawScore    float64     `json:"rawScore"`
	MaxPossible float64     `json:"maxPossible"`
	Percentage  float64     `json:"percentage"`
	HealthLevel HealthLevel `json:"healthLevel"`
	Health      HealthLabel `json:"health"`
}

// OverallHealth is the unweighted mean of the present category percentages
// with its own fixed-threshold classification.
type OverallHealth struct {
	Percentage    float64     `json:"percentage"`
	HealthLevel   HealthLevel `json:"healthLevel"`
	CategoryCount int         `json:"categoryCount"`
}

// EnhancedCategoryScore is a stored category score with its analytics merged
// in. The original sections/total keys stay untouched next to the derived
// ones.
type EnhancedCategoryScore struct {
	CategoryScore
	CategoryAnalytics
}

// EnhancedScores is the full output of score processing: every category with
// analytics attached, plus the synthetic overall health. Its JSON form
// flattens categories and overallHealth into sibling keys, matching the
// shape the rest of the system stores and renders.
type EnhancedScores struct {
	Categories map[CategoryKey]*EnhancedCategoryScore
	Overall    OverallHealth
}

// MarshalJSON emits category keys and overallHealth as siblings of one
// object, never nesting overallHealth under a category key.
func (s *EnhancedScores) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Categories)+1)
	for key, score := range s.Categories {
		out[string(key)] = score
	}
	out["overallHealth"] = s.Overall
	return json.Marshal(out)
}

// NormalizeScore converts a raw score into a percentage of the maximum,
// clamped to [0,100]. A zero or negative maximum yields 0 rather than a
// division error, and raw scores outside the theoretical range clamp instead
// of over- or underflowing.
func NormalizeScore(raw, maxPossible float64) float64 {
	if maxPossible <= 0 {
		return 0
	}
	percentage := raw / maxPossible * 100
	if percentage < 0 {
		return 0
	}
	if percentage > 100 {
		return 100
	}
	return percentage
}

// DetermineHealthLevel classifies a raw category score against the
// category's bands. Band upper bounds are inclusive: a score exactly on
// LowRangeTop is low, exactly on MedRangeTop is medium. An unknown category
// fails safe to low rather than failing loud.
func DetermineHealthLevel(key CategoryKey, raw float64) HealthLevel {
	thresholds := GetCategoryThresholds(key)
	if thresholds == nil {
		return HealthLevelLow
	}
	if raw <= thresholds.Low.Max {
		return HealthLevelLow
	}
	if raw <= thresholds.Medium.Max {
		return HealthLevelMedium
	}
	return HealthLevelHigh
}

// CalculateCategoryAnalytics derives the percentage, health level and
// presentation label for one category's raw total.
func CalculateCategoryAnalytics(key CategoryKey, raw float64) CategoryAnalytics {
	maxPossible := GetCategoryMaxScore(key)
	level := DetermineHealthLevel(key, raw)
	return CategoryAnalytics{
		RawScore:    raw,
		MaxPossible: maxPossible,
		Percentage:  NormalizeScore(raw, maxPossible),
		HealthLevel: level,
		Health:      HealthLabelFor(level),
	}
}

// CalculateOverallHealth averages the percentages of every present category.
// Categories with no entry are excluded from the mean, not counted as zero.
// The overall level uses the fixed 70/40 cutoffs, not the per-category band
// table.
func CalculateOverallHealth(categories map[CategoryKey]*EnhancedCategoryScore) OverallHealth {
	var sum float64
	var count int
	for _, score := range categories {
		if score == nil {
			continue
		}
		sum += score.Percentage
		count++
	}

	overall := OverallHealth{CategoryCount: count, HealthLevel: HealthLevelLow}
	if count == 0 {
		return overall
	}
	overall.Percentage = sum / float64(count)
	switch {
	case overall.Percentage >= overallHighCutoff:
		overall.HealthLevel = HealthLevelHigh
	case overall.Percentage >= overallMediumCutoff:
		overall.HealthLevel = HealthLevelMedium
	}
	return overall
}

// ProcessComputedScores is the single integration entry point that turns raw
// category scores into the enhanced map the report and dashboard layers
// consume. It merges per-category analytics into every category present in
// the input and attaches the overall health computed from those same
// categories. Nil or empty input returns nil, signaling "nothing to show";
// callers must check for it.
func ProcessComputedScores(rawScores map[CategoryKey]*CategoryScore) *EnhancedScores {
	if len(rawScores) == 0 {
		return nil
	}

	enhanced := &EnhancedScores{
		Categories: make(map[CategoryKey]*EnhancedCategoryScore, len(rawScores)),
	}
	for key, score := range rawScores {
		if score == nil {
			continue
		}
		enhanced.Categories[key] = &EnhancedCategoryScore{
			CategoryScore:     *score,
			CategoryAnalytics: CalculateCategoryAnalytics(key, score.Total),
		}
	}
	if len(enhanced.Categories) == 0 {
		return nil
	}
	enhanced.Overall = CalculateOverallHealth(enhanced.Categories)
	return enhanced
}
