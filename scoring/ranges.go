package scoring

// CategoryKey identifies one of the five fixed business-health categories.
type CategoryKey string

const (
	CategoryFoundationalStructure CategoryKey = "foundationalStructure"
	CategoryFinancialPosition     CategoryKey = "financialPosition"
	CategorySalesMarketing        CategoryKey = "salesMarketing"
	CategoryProductService        CategoryKey = "productService"
	CategoryGeneral               CategoryKey = "general"
)

// RangeConfig is the static score-range configuration for one category.
// LowRangeTop and MedRangeTop are the inclusive upper bounds of the low and
// medium bands; MaxPossible is the denominator for percentage normalization.
// FormLow and FormHigh are the theoretical min/max of the underlying forms
// and are informational only.
type RangeConfig struct {
	Label       string  `json:"label"`
	Sections    []int   `json:"sections"`
	FormLow     float64 `json:"formLow"`
	FormHigh    float64 `json:"formHigh"`
	LowRangeTop float64 `json:"lowRangeTop"`
	MedRangeTop float64 `json:"medRangeTop"`
	MaxPossible float64 `json:"maxPossible"`
}

// Band is a closed score interval.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Thresholds holds the three health bands for a category. Bands are
// contiguous with inclusive upper bounds: a raw score equal to Low.Max is
// still low, one equal to Medium.Max is still medium.
type Thresholds struct {
	Low    Band `json:"low"`
	Medium Band `json:"medium"`
	High   Band `json:"high"`
}

// categoryRanges is the single source of truth for the category/section
// mapping and the score bands. Sections 8 and 12 intentionally belong to two
// categories each, so one section's score feeds two category totals.
var categoryRanges = map[CategoryKey]RangeConfig{
	CategoryFoundationalStructure: {
		Label:       "Foundational Structure",
		Sections:    []int{1, 2, 3, 8},
		FormLow:     0,
		FormHigh:    135,
		LowRangeTop: 44,
		MedRangeTop: 95,
		MaxPossible: 135,
	},
	CategoryFinancialPosition: {
		Label:       "Financial Position",
		Sections:    []int{4, 5, 12},
		FormLow:     0,
		FormHigh:    98,
		LowRangeTop: 30,
		MedRangeTop: 68,
		MaxPossible: 98,
	},
	CategorySalesMarketing: {
		Label:       "Sales & Marketing",
		Sections:    []int{6, 7, 8},
		FormLow:     0,
		FormHigh:    88,
		LowRangeTop: 28,
		MedRangeTop: 62,
		MaxPossible: 88,
	},
	CategoryProductService: {
		Label:       "Product & Service",
		Sections:    []int{9, 10, 12},
		FormLow:     0,
		FormHigh:    64,
		LowRangeTop: 25,
		MedRangeTop: 56,
		MaxPossible: 64,
	},
	CategoryGeneral: {
		Label:       "General Business Health",
		Sections:    []int{11, 13},
		FormLow:     0,
		FormHigh:    56,
		LowRangeTop: 18,
		MedRangeTop: 40,
		MaxPossible: 56,
	},
}

// categoryOrder fixes the display/iteration order of the categories.
var categoryOrder = []CategoryKey{
	CategoryFoundationalStructure,
	CategoryFinancialPosition,
	CategorySalesMarketing,
	CategoryProductService,
	CategoryGeneral,
}

// CategoryKeys returns the category keys in their fixed display order.
func CategoryKeys() []CategoryKey {
	keys := make([]CategoryKey, len(categoryOrder))
	copy(keys, categoryOrder)
	return keys
}

// GetCategoryRange returns the range configuration for a category, or nil
// for an unknown key. The returned value is a copy; the registry itself is
// never handed out for mutation.
func GetCategoryRange(key CategoryKey) *RangeConfig {
	cfg, exists := categoryRanges[key]
	if !exists {
		return nil
	}
	sections := make([]int, len(cfg.Sections))
	copy(sections, cfg.Sections)
	cfg.Sections = sections
	return &cfg
}

// GetCategoryMaxScore returns the maximum attainable raw score for a
// category, or 0 for an unknown key.
func GetCategoryMaxScore(key CategoryKey) float64 {
	cfg, exists := categoryRanges[key]
	if !exists {
		return 0
	}
	return cfg.MaxPossible
}

// GetCategoryThresholds derives the three health bands for a category from
// its range configuration, or nil for an unknown key.
func GetCategoryThresholds(key CategoryKey) *Thresholds {
	cfg, exists := categoryRanges[key]
	if !exists {
		return nil
	}
	return &Thresholds{
		Low:    Band{Min: cfg.FormLow, Max: cfg.LowRangeTop},
		Medium: Band{Min: cfg.LowRangeTop, Max: cfg.MedRangeTop},
		High:   Band{Min: cfg.MedRangeTop, Max: cfg.MaxPossible},
	}
}
