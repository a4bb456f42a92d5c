package analysis

// ATSScore estimates how well the resume would survive automated applicant
// tracking systems: required sections (40), skill coverage (30), formatting
// quality (20), and complete contact information (10).
func ATSScore(text string, flags SectionFlags, skills []string, formattingScore int) int {
	score := 0.0

	required := []bool{flags.PersonalInfo, flags.WorkExperience, flags.Education, flags.Skills}
	found := 0
	for _, present := range required {
		if present {
			found++
		}
	}
	score += float64(found) / float64(len(required)) * 40

	switch {
	case len(skills) >= 10:
		score += 30
	case len(skills) >= 5:
		score += 20
	case len(skills) > 0:
		score += 10
	}

	score += float64(formattingScore) / 100 * 20

	if flags.PersonalInfo && emailRe.MatchString(text) && phoneRe.MatchString(text) {
		score += 10
	}

	return clampScore(score)
}
