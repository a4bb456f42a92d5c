package analysis

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Section weights for the overall resume score. They sum to 1.0.
const (
	weightPersonalInfo   = 0.05
	weightSummary        = 0.10
	weightSkills         = 0.20
	weightWorkExperience = 0.30
	weightEducation      = 0.15
	weightProjects       = 0.10
	weightCertifications = 0.05
	weightFormatting     = 0.05
)

// summaryWindowSize bounds the summary window to the characters following the
// summary header keyword.
const summaryWindowSize = 500

var summaryKeywords = []string{"experience", "skills", "professional", "developer", "engineer", "passionate", "expertise"}

var summaryActionWords = []string{"developed", "created", "implemented", "managed", "led", "achieved", "designed"}

var experienceActionVerbs = []string{"developed", "created", "implemented", "designed", "built", "managed", "led", "achieved", "improved", "optimized"}

var projectTechKeywords = []string{"github", "deployed", "technologies", "stack", "built with"}

var (
	linkedinRe    = regexp.MustCompile(`linkedin\.com|linkedin`)
	githubSiteRe  = regexp.MustCompile(`github\.com|github|portfolio|website`)
	addressRe     = regexp.MustCompile(`(?i)\b(address|location|city|state|country)\b`)
	expHeadRe     = regexp.MustCompile(`(?i)(experience|work|employment)`)
	expStopRe     = regexp.MustCompile(`(?i)(education|projects|skills)`)
	bulletRe      = regexp.MustCompile(`[•\-*]\s`)
	quantifierRe  = regexp.MustCompile(`(?i)\b(\d+%|\d+\+|\$?\d+[kKmMbB]?|increased|decreased|reduced|improved)\b`)
	dateTokenRe   = regexp.MustCompile(`(?i)\b(20\d{2}|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\b`)
	degreeWordRe  = regexp.MustCompile(`(?i)\b(b\.?s\.?|b\.?a\.?|m\.?s\.?|m\.?a\.?|ph\.?d\.?|bachelor|master|doctorate|degree)\b`)
	institutionRe = regexp.MustCompile(`(?i)\b(university|college|institute|school)\b`)
	yearGradeRe   = regexp.MustCompile(`(?i)\b(20\d{2}|gpa|grade|cgpa)\b`)
	studyFieldRe  = regexp.MustCompile(`(?i)\b(computer science|engineering|information technology|software|cs|it)\b`)
	projectWordRe = regexp.MustCompile(`(?i)\bproject\b`)
	linkRe        = regexp.MustCompile(`github\.com|http|www\.|\.com|\.io`)
	certWordRe    = regexp.MustCompile(`(?i)\b(certified|certification|certificate)\b`)
	headerLineRe  = regexp.MustCompile(`(?m)^[A-Z][A-Z\s]{3,}$`)
)

// ScoreSections evaluates every section scorer plus formatting. The scorers
// are pure functions of the same immutable inputs with no dependency on one
// another, so they run concurrently; each writes a distinct field.
func ScoreSections(text, normalized string, flags SectionFlags, skills []string) SectionScores {
	var scores SectionScores
	g := new(errgroup.Group)
	g.Go(func() error { scores.PersonalInfo = scorePersonalInfo(text, normalized, flags); return nil })
	g.Go(func() error { scores.Summary = scoreSummary(normalized, flags); return nil })
	g.Go(func() error { scores.Skills = scoreSkills(flags, skills); return nil })
	g.Go(func() error { scores.WorkExperience = scoreWorkExperience(normalized, flags); return nil })
	g.Go(func() error { scores.Education = scoreEducation(normalized, flags); return nil })
	g.Go(func() error { scores.Projects = scoreProjects(normalized, flags); return nil })
	g.Go(func() error { scores.Certifications = scoreCertifications(text, flags); return nil })
	g.Go(func() error { scores.Formatting = scoreFormatting(text); return nil })
	_ = g.Wait() // scorers never fail
	return scores
}

// OverallScore computes the weighted resume score from the section scores.
func OverallScore(s SectionScores) int {
	weighted := float64(s.PersonalInfo)*weightPersonalInfo +
		float64(s.Summary)*weightSummary +
		float64(s.Skills)*weightSkills +
		float64(s.WorkExperience)*weightWorkExperience +
		float64(s.Education)*weightEducation +
		float64(s.Projects)*weightProjects +
		float64(s.Certifications)*weightCertifications +
		float64(s.Formatting)*weightFormatting
	return clampScore(weighted)
}

// DetermineStrength maps the overall score to a qualitative tier.
func DetermineStrength(resumeScore int) Strength {
	switch {
	case resumeScore >= 75:
		return StrengthIndustryReady
	case resumeScore >= 50:
		return StrengthIntermediate
	default:
		return StrengthBeginner
	}
}

func scorePersonalInfo(text, normalized string, flags SectionFlags) int {
	lower := strings.ToLower(normalized)
	score := 0.0
	if emailRe.MatchString(text) {
		score += 30
	}
	if phoneRe.MatchString(text) {
		score += 20
	}
	if linkedinRe.MatchString(lower) {
		score += 15
	}
	if githubSiteRe.MatchString(lower) {
		score += 15
	}
	if addressRe.MatchString(lower) {
		score += 10
	}
	if flags.PersonalInfo {
		score += 10
	}
	return clampScore(score)
}

func scoreSummary(normalized string, flags SectionFlags) int {
	if !flags.Summary {
		return 0
	}

	// Window: the summary header keyword plus the text that follows it.
	loc := summaryHeadRe.FindStringIndex(normalized)
	if loc == nil {
		return 20
	}
	end := loc[1] + summaryWindowSize
	if end > len(normalized) {
		end = len(normalized)
	}
	window := normalized[loc[0]:end]
	windowLower := strings.ToLower(window)

	score := 0.0
	wordCount := len(strings.Fields(window))
	switch {
	case wordCount >= 50 && wordCount <= 150:
		score += 30
	case wordCount >= 30 && wordCount <= 200:
		score += 20
	case wordCount > 0:
		score += 10
	}

	score += markerFraction(windowLower, summaryKeywords) * 40
	score += markerFraction(windowLower, summaryActionWords) * 30

	return clampScore(score)
}

func scoreSkills(flags SectionFlags, skills []string) int {
	if !flags.Skills && len(skills) == 0 {
		return 0
	}

	score := 0.0
	if flags.Skills {
		score += 40
	}
	switch {
	case len(skills) >= 15:
		score += 30
	case len(skills) >= 10:
		score += 25
	case len(skills) >= 5:
		score += 20
	case len(skills) > 0:
		score += 10
	}

	categoryCount := 0
	for _, category := range skillCategories {
		if categoryRepresented(category, skills) {
			categoryCount++
		}
	}
	score += float64(categoryCount) / float64(len(skillCategories)) * 30

	return clampScore(score)
}

// categoryRepresented reports whether any extracted skill contains one of the
// category's skills as a substring.
func categoryRepresented(category, skills []string) bool {
	for _, catSkill := range category {
		for _, skill := range skills {
			if strings.Contains(strings.ToLower(skill), catSkill) {
				return true
			}
		}
	}
	return false
}

func scoreWorkExperience(normalized string, flags SectionFlags) int {
	if !flags.WorkExperience {
		return 0
	}

	section := experienceSection(normalized)
	if section == "" {
		return 20
	}
	sectionLower := strings.ToLower(section)

	score := 0.0
	bullets := len(bulletRe.FindAllString(section, -1))
	switch {
	case bullets >= 6:
		score += 30
	case bullets >= 4:
		score += 25
	case bullets >= 2:
		score += 20
	case bullets > 0:
		score += 10
	}

	score += markerFraction(sectionLower, experienceActionVerbs) * 30

	quantifiers := len(quantifierRe.FindAllString(section, -1))
	switch {
	case quantifiers >= 3:
		score += 30
	case quantifiers >= 1:
		score += 20
	}

	if dateTokenRe.MatchString(section) {
		score += 10
	}

	return clampScore(score)
}

// experienceSection slices the normalized text from the experience header up
// to the next section header (education, projects, or skills) or end of text.
// Returns "" when no header with trailing content is found.
func experienceSection(normalized string) string {
	loc := expHeadRe.FindStringIndex(normalized)
	if loc == nil || loc[1] >= len(normalized) {
		return ""
	}
	rest := normalized[loc[1]:]
	if stop := expStopRe.FindStringIndex(rest); stop != nil {
		return normalized[loc[0] : loc[1]+stop[0]]
	}
	return normalized[loc[0]:]
}

func scoreEducation(normalized string, flags SectionFlags) int {
	if !flags.Education {
		return 0
	}

	score := 0.0
	if degreeWordRe.MatchString(normalized) {
		score += 40
	}
	if institutionRe.MatchString(normalized) {
		score += 30
	}
	if yearGradeRe.MatchString(normalized) {
		score += 20
	}
	if studyFieldRe.MatchString(normalized) {
		score += 10
	}
	return clampScore(score)
}

func scoreProjects(normalized string, flags SectionFlags) int {
	if !flags.Projects {
		return 0
	}
	lower := strings.ToLower(normalized)

	score := 0.0
	mentions := len(projectWordRe.FindAllString(normalized, -1))
	switch {
	case mentions >= 3:
		score += 50
	case mentions >= 2:
		score += 40
	case mentions >= 1:
		score += 30
	}

	score += markerFraction(lower, projectTechKeywords) * 30

	if linkRe.MatchString(lower) {
		score += 20
	}

	return clampScore(score)
}

func scoreCertifications(text string, flags SectionFlags) int {
	if !flags.Certifications {
		return 0
	}
	switch mentions := len(certWordRe.FindAllString(text, -1)); {
	case mentions >= 2:
		return 100
	case mentions >= 1:
		return 70
	default:
		return 0
	}
}

// scoreFormatting judges layout quality from the raw text. It is the only
// scorer without a presence flag and always runs.
func scoreFormatting(text string) int {
	score := 0.0

	newlines := strings.Count(text, "\n")
	switch {
	case newlines >= 10 && newlines <= 50:
		score += 20
	case newlines > 0:
		score += 10
	}

	headers := len(headerLineRe.FindAllString(text, -1))
	switch {
	case headers >= 4:
		score += 30
	case headers >= 2:
		score += 20
	case headers >= 1:
		score += 10
	}

	bullets := len(bulletRe.FindAllString(text, -1))
	switch {
	case bullets >= 5:
		score += 25
	case bullets >= 3:
		score += 20
	case bullets >= 1:
		score += 10
	}

	words := len(strings.Fields(text))
	switch {
	case words >= 300 && words <= 800:
		score += 25
	case words >= 200 && words <= 1000:
		score += 20
	case words > 0:
		score += 10
	}

	return clampScore(score)
}

// markerFraction returns the fraction of markers contained in the lower-cased
// haystack.
func markerFraction(haystackLower string, markers []string) float64 {
	found := 0
	for _, marker := range markers {
		if strings.Contains(haystackLower, marker) {
			found++
		}
	}
	return float64(found) / float64(len(markers))
}

// clampScore rounds to the nearest integer and clamps to [0,100].
func clampScore(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
