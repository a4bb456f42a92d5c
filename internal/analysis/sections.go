package analysis

import "regexp"

// Header and keyword patterns per section. A match anywhere in the normalized
// text sets the flag.
var (
	personalInfoHeadRe   = regexp.MustCompile(`(?i)\b(email|phone|address|contact|linkedin|github|portfolio)\b`)
	summaryHeadRe        = regexp.MustCompile(`(?i)\b(summary|profile|objective|about|overview)\b`)
	skillsHeadRe         = regexp.MustCompile(`(?i)\b(skills|technical skills|competencies|technologies|tools)\b`)
	workExperienceHeadRe = regexp.MustCompile(`(?i)\b(experience|work|employment|career|professional experience|work history)\b`)
	educationHeadRe      = regexp.MustCompile(`(?i)\b(education|academic|university|college|degree|bachelor|master|phd)\b`)
	projectsHeadRe       = regexp.MustCompile(`(?i)\b(projects|project|portfolio|personal projects)\b`)
	certificationsHeadRe = regexp.MustCompile(`(?i)\b(certifications|certificate|certified|certification)\b`)
)

// Cross-cutting heuristics that can set a flag even without a header match.
var (
	emailRe      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe      = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	degreeRe     = regexp.MustCompile(`(?i)\b(b\.?s\.?|b\.?a\.?|m\.?s\.?|m\.?a\.?|ph\.?d\.?|bachelor|master|doctorate)\b`)
	employmentRe = regexp.MustCompile(`(?i)\b(worked|employed|position|role|job|developer|engineer|manager)\b`)
)

// DetectSections tests the normalized text against each section's pattern
// family and the cross-cutting heuristics. Heuristics only ever flip a flag
// from false to true; a header match is never overridden.
func DetectSections(normalized string) SectionFlags {
	flags := SectionFlags{
		PersonalInfo:   personalInfoHeadRe.MatchString(normalized),
		Summary:        summaryHeadRe.MatchString(normalized),
		Skills:         skillsHeadRe.MatchString(normalized),
		WorkExperience: workExperienceHeadRe.MatchString(normalized),
		Education:      educationHeadRe.MatchString(normalized),
		Projects:       projectsHeadRe.MatchString(normalized),
		Certifications: certificationsHeadRe.MatchString(normalized),
	}

	if !flags.PersonalInfo && (emailRe.MatchString(normalized) || phoneRe.MatchString(normalized)) {
		flags.PersonalInfo = true
	}
	if !flags.Education && degreeRe.MatchString(normalized) {
		flags.Education = true
	}
	if !flags.WorkExperience && employmentRe.MatchString(normalized) {
		flags.WorkExperience = true
	}

	return flags
}
