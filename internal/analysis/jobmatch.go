package analysis

import (
	"math"
	"strings"
)

// JobMatch is the result of comparing resume skills against job-description
// skills.
type JobMatch struct {
	MatchScore    int
	MatchedSkills []string
	MissingSkills []string
}

// MatchJob compares the resume skill set against the job skill set. A job
// skill counts as matched when it contains, or is contained in, any resume
// skill (case-insensitive), so "react" and "react.js" are equivalent. Both
// output lists preserve the job skills' original order and casing. An empty
// job skill list yields a zero score and empty lists.
func MatchJob(resumeSkills, jobSkills []string) JobMatch {
	if len(jobSkills) == 0 {
		return JobMatch{MatchedSkills: []string{}, MissingSkills: []string{}}
	}

	resumeLower := make([]string, len(resumeSkills))
	for i, skill := range resumeSkills {
		resumeLower[i] = strings.ToLower(skill)
	}

	matched := make([]string, 0, len(jobSkills))
	missing := make([]string, 0, len(jobSkills))
	for _, jobSkill := range jobSkills {
		if skillCovered(strings.ToLower(jobSkill), resumeLower) {
			matched = append(matched, jobSkill)
		} else {
			missing = append(missing, jobSkill)
		}
	}

	score := int(math.Round(float64(len(matched)) / float64(len(jobSkills)) * 100))
	return JobMatch{MatchScore: score, MatchedSkills: matched, MissingSkills: missing}
}

// skillCovered reports whether the job skill matches any resume skill by
// bidirectional substring containment.
func skillCovered(jobSkill string, resumeSkills []string) bool {
	for _, resumeSkill := range resumeSkills {
		if strings.Contains(resumeSkill, jobSkill) || strings.Contains(jobSkill, resumeSkill) {
			return true
		}
	}
	return false
}
