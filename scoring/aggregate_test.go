package scoring

import (
	"testing"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"

	"github.com/stretchr/testify/assert"
)

func sectionResult(section int, score float64) models.SectionResult {
	return models.SectionResult{
		UserID:        "user-1",
		SectionNumber: section,
		SectionScore:  score,
	}
}

func TestAggregate(t *testing.T) {
	t.Run("Empty input yields all five categories with empty sections", func(t *testing.T) {
		scores := Aggregate(nil)
		assert.Len(t, scores, 5)
		for _, key := range CategoryKeys() {
			assert.NotNil(t, scores[key], "category %s missing", key)
			assert.Empty(t, scores[key].Sections)
			assert.Equal(t, float64(0), scores[key].Total)
		}
	})

	t.Run("Section scores land in their owning category", func(t *testing.T) {
		scores := Aggregate([]models.SectionResult{
			sectionResult(1, 12),
			sectionResult(2, 10),
			sectionResult(4, 20),
		})
		fs := scores[CategoryFoundationalStructure]
		assert.Equal(t, float64(22), fs.Total)
		assert.Equal(t, float64(12), fs.Sections[1])
		assert.Equal(t, float64(10), fs.Sections[2])
		assert.Equal(t, float64(20), scores[CategoryFinancialPosition].Total)
		assert.Equal(t, float64(0), scores[CategoryGeneral].Total)
	})

	t.Run("Shared sections contribute to both categories", func(t *testing.T) {
		scores := Aggregate([]models.SectionResult{
			sectionResult(8, 15),
			sectionResult(12, 9),
		})
		assert.Equal(t, float64(15), scores[CategoryFoundationalStructure].Sections[8])
		assert.Equal(t, float64(15), scores[CategorySalesMarketing].Sections[8])
		assert.Equal(t, float64(9), scores[CategoryFinancialPosition].Sections[12])
		assert.Equal(t, float64(9), scores[CategoryProductService].Sections[12])
	})

	t.Run("Zero-score sections remain present", func(t *testing.T) {
		scores := Aggregate([]models.SectionResult{sectionResult(11, 0)})
		gen := scores[CategoryGeneral]
		_, present := gen.Sections[11]
		assert.True(t, present)
		assert.Equal(t, float64(0), gen.Total)
	})

	t.Run("Duplicate section results keep the last score", func(t *testing.T) {
		scores := Aggregate([]models.SectionResult{
			sectionResult(6, 5),
			sectionResult(6, 18),
		})
		sm := scores[CategorySalesMarketing]
		assert.Equal(t, float64(18), sm.Sections[6])
		assert.Equal(t, float64(18), sm.Total)
	})

	t.Run("Total always equals the sum of section scores", func(t *testing.T) {
		scores := Aggregate([]models.SectionResult{
			sectionResult(1, 7),
			sectionResult(2, 8.5),
			sectionResult(3, 3),
			sectionResult(8, 11),
			sectionResult(12, 4),
		})
		for key, score := range scores {
			var sum float64
			for _, s := range score.Sections {
				sum += s
			}
			assert.Equal(t, sum, score.Total, "total drifted from section sum for %s", key)
		}
	})
}
