package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordDensity_AllMarkersPresent(t *testing.T) {
	densities := KeywordDensity("any text at all")

	assert.Len(t, densities, len(densityKeywords))
	for _, kw := range densityKeywords {
		assert.Contains(t, densities, kw)
	}
}

func TestKeywordDensity_KnownCounts(t *testing.T) {
	// 5 words, "skills" twice, "developed" once.
	densities := KeywordDensity("developed skills and more skills")

	assert.Equal(t, 40.0, densities["skills"])
	assert.Equal(t, 20.0, densities["developed"])
	assert.Equal(t, 0.0, densities["managed"])
}

func TestKeywordDensity_WholeWordMatching(t *testing.T) {
	// "projects" must not count as "project".
	densities := KeywordDensity("projects projects")

	assert.Equal(t, 0.0, densities["project"])
}

func TestKeywordDensity_RoundsToTwoDecimals(t *testing.T) {
	// 1 occurrence in 3 words: 33.333... -> 33.33
	densities := KeywordDensity("led the team")

	assert.Equal(t, 33.33, densities["led"])
}

func TestKeywordDensity_EmptyText(t *testing.T) {
	densities := KeywordDensity("")

	for kw, density := range densities {
		assert.Equal(t, 0.0, density, "marker %s", kw)
	}
}
