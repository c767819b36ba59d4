package scoring

import (
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"
)

// CategoryScore is the stored per-category score record: the raw score of
// each contributing section keyed by section number, and their sum. Total
// must equal the sum of Sections after every mutation; recomputeTotal is the
// only way Total is ever written.
type CategoryScore struct {
	Sections map[int]float64 `json:"sections"`
	Total    float64         `json:"total"`
}

// NewCategoryScore returns an empty category score.
func NewCategoryScore() *CategoryScore {
	return &CategoryScore{Sections: make(map[int]float64)}
}

// setSection records a section's raw score and recomputes the total.
func (c *CategoryScore) setSection(sectionNumber int, score float64) {
	if c.Sections == nil {
		c.Sections = make(map[int]float64)
	}
	c.Sections[sectionNumber] = score
	c.recomputeTotal()
}

func (c *CategoryScore) recomputeTotal() {
	var total float64
	for _, score := range c.Sections {
		total += score
	}
	c.Total = total
}

// Aggregate maps a flat list of per-section results into the five fixed
// categories, summing the section scores that belong to each. A section that
// feeds two categories (sections 8 and 12) contributes its score to both
// totals. A zero-score section still appears as a key in Sections, which
// keeps "submitted with score 0" distinct from "never submitted". Duplicate
// results for the same section number are not detected; the last one in the
// input wins.
func Aggregate(results []models.SectionResult) map[CategoryKey]*CategoryScore {
	scores := make(map[CategoryKey]*CategoryScore, len(categoryOrder))
	for _, key := range categoryOrder {
		scores[key] = NewCategoryScore()
	}

	for _, result := range results {
		for _, key := range categoryOrder {
			if !categoryHasSection(key, result.SectionNumber) {
				continue
			}
			scores[key].setSection(result.SectionNumber, result.SectionScore)
		}
	}
	return scores
}

func categoryHasSection(key CategoryKey, sectionNumber int) bool {
	for _, member := range categoryRanges[key].Sections {
		if member == sectionNumber {
			return true
		}
	}
	return false
}
