package analysis

import "strings"

// ExtractSkills scans the normalized text against the fixed vocabulary and
// returns every matching skill, lower-cased and deduplicated. The result
// follows vocabulary order, which keeps analysis output deterministic, but
// callers must treat it as a set. The same extractor is applied to job
// description text during job matching.
func ExtractSkills(normalized string) []string {
	lower := strings.ToLower(normalized)
	found := make([]string, 0, 16)
	for _, m := range vocabulary {
		if m.re.MatchString(lower) {
			found = append(found, m.name)
		}
	}
	return found
}

// missingFromVocabulary returns the first limit vocabulary skills that no
// extracted skill contains as a substring. Used as the default "missing
// skills" list when no job description is supplied.
func missingFromVocabulary(extracted []string, limit int) []string {
	lowered := make([]string, len(extracted))
	for i, skill := range extracted {
		lowered[i] = strings.ToLower(skill)
	}

	missing := make([]string, 0, limit)
	for _, m := range vocabulary {
		covered := false
		for _, skill := range lowered {
			if strings.Contains(skill, m.name) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, m.name)
			if len(missing) == limit {
				break
			}
		}
	}
	return missing
}
