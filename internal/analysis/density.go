package analysis

import (
	"math"
	"regexp"
	"strings"
)

// densityKeywords are the high-value lexical markers tracked by the keyword
// density table.
var densityKeywords = []string{
	"experience", "skills", "project", "education", "achievement",
	"developed", "implemented", "managed", "led", "created", "designed",
}

var densityPatterns = compileDensityPatterns()

func compileDensityPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(densityKeywords))
	for _, kw := range densityKeywords {
		patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return patterns
}

// KeywordDensity computes occurrences-per-100-words for each tracked marker,
// rounded to two decimals. A zero-word resume yields 0.0 for every marker.
func KeywordDensity(normalized string) map[string]float64 {
	lower := strings.ToLower(normalized)
	wordCount := len(strings.Fields(lower))

	densities := make(map[string]float64, len(densityKeywords))
	for _, kw := range densityKeywords {
		density := 0.0
		if wordCount > 0 {
			count := len(densityPatterns[kw].FindAllString(lower, -1))
			density = round2(float64(count) / float64(wordCount) * 100)
		}
		densities[kw] = density
	}
	return densities
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
