package scoring

// HealthBucket is the report-content table's naming for the three health
// levels. The names differ from HealthLevel for historical reasons and the
// mapping between the two is fixed.
type HealthBucket string

const (
	BucketHealthy       HealthBucket = "healthy"
	BucketNeedsTweaking HealthBucket = "needsTweaking"
	BucketUnhealthy     HealthBucket = "unhealthy"
)

// bucketLabels are the display labels the report shows for each bucket.
var bucketLabels = map[HealthBucket]string{
	BucketHealthy:       "Healthy",
	BucketNeedsTweaking: "Needs Tweaking",
	BucketUnhealthy:     "Unhealthy",
}

// BucketForLevel maps a health level to its content bucket. Anything
// unrecognized defaults to needsTweaking so a report can always be rendered.
func BucketForLevel(level HealthLevel) HealthBucket {
	switch level {
	case HealthLevelHigh:
		return BucketHealthy
	case HealthLevelLow:
		return BucketUnhealthy
	default:
		return BucketNeedsTweaking
	}
}

// ReportEntry is the selected report content for one category: the bucket's
// display label, the narrative message, and the ordered resource list.
type ReportEntry struct {
	Label     string     `json:"label"`
	Message   string     `json:"message"`
	Resources []Resource `json:"resources"`
}

// ActionItem is one prioritized follow-up for a category at the lowest
// health level.
type ActionItem struct {
	Category      CategoryKey `json:"category"`
	CategoryLabel string      `json:"categoryLabel"`
	Message       string      `json:"message"`
	Resources     []Resource  `json:"resources"`
}

// actionItemResourceCap limits how many resources an action item carries.
// The report UI renders action items as compact cards; keep the cap at 2.
const actionItemResourceCap = 2

// ReportSelector selects narrative content and resources from a resolved
// content table. The table is injected once at construction; any admin
// override loading happens before the selector ever sees it.
type ReportSelector struct {
	content ReportContentTable
}

// NewReportSelector creates a selector over the given content table. A nil
// table falls back to the shipped default content.
func NewReportSelector(content ReportContentTable) *ReportSelector {
	if content == nil {
		content = DefaultReportContent()
	}
	return &ReportSelector{content: content}
}

// GetCategoryReport returns the report content for a category at a health
// level. An unknown category returns a generic "not available" stub; a
// health level with no mapped bucket falls back to the needsTweaking
// content. It never fails.
func (s *ReportSelector) GetCategoryReport(key CategoryKey, level HealthLevel) ReportEntry {
	buckets, exists := s.content[key]
	if !exists {
		return ReportEntry{
			Label:     "Unknown",
			Message:   "Report content for this category is not available.",
			Resources: []Resource{},
		}
	}

	bucket := BucketForLevel(level)
	entry, exists := buckets[bucket]
	if !exists {
		bucket = BucketNeedsTweaking
		entry = buckets[bucket]
	}

	resources := make([]Resource, len(entry.Resources))
	copy(resources, entry.Resources)
	return ReportEntry{
		Label:     bucketLabels[bucket],
		Message:   entry.Message,
		Resources: resources,
	}
}

// GenerateActionItems builds the prioritized action list: one item per
// category currently at the low health level, in fixed category order, each
// carrying the category's report message and at most two resources.
func (s *ReportSelector) GenerateActionItems(scores *EnhancedScores) []ActionItem {
	items := make([]ActionItem, 0)
	if scores == nil {
		return items
	}

	for _, key := range categoryOrder {
		score, exists := scores.Categories[key]
		if !exists || score == nil || score.HealthLevel != HealthLevelLow {
			continue
		}
		report := s.GetCategoryReport(key, score.HealthLevel)
		resources := report.Resources
		if len(resources) > actionItemResourceCap {
			resources = resources[:actionItemResourceCap]
		}
		items = append(items, ActionItem{
			Category:      key,
			CategoryLabel: categoryRanges[key].Label,
			Message:       report.Message,
			Resources:     resources,
		})
	}
	return items
}

// GetRecommendedResources collects the resources for every category at its
// current health level, in fixed category order, de-duplicated by title.
// The first occurrence of a title wins; later entries with the same title
// are dropped even if their descriptions differ.
func (s *ReportSelector) GetRecommendedResources(scores *EnhancedScores) []Resource {
	resources := make([]Resource, 0)
	if scores == nil {
		return resources
	}

	seen := make(map[string]bool)
	for _, key := range categoryOrder {
		score, exists := scores.Categories[key]
		if !exists || score == nil {
			continue
		}
		report := s.GetCategoryReport(key, score.HealthLevel)
		for _, resource := range report.Resources {
			if seen[resource.Title] {
				continue
			}
			seen[resource.Title] = true
			resources = append(resources, resource)
		}
	}
	return resources
}
