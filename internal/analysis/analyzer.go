package analysis

// missingSkillsLimit caps the default missing-skills list when no job
// description is supplied.
const missingSkillsLimit = 10

// Analyze runs the full evaluation pipeline over extracted resume text and
// assembles the report. An empty jobDescription means none was supplied: the
// job match score stays null, matched skills default to the extracted skills,
// and missing skills default to the first vocabulary entries absent from the
// resume. Analyze never fails; degenerate input degrades to an all-zero
// report with the corresponding feedback items.
func Analyze(text, fileName, jobDescription string) *Report {
	normalized := Normalize(text)
	flags := DetectSections(normalized)
	skills := ExtractSkills(normalized)

	scores := ScoreSections(text, normalized, flags, skills)
	resumeScore := OverallScore(scores)
	atsScore := ATSScore(text, flags, skills, scores.Formatting)

	report := &Report{
		ResumeText:       text,
		FileName:         fileName,
		DetectedSections: flags,
		SectionScores:    scores,
		ExtractedSkills:  skills,
		MatchedSkills:    skills,
		MissingSkills:    missingFromVocabulary(skills, missingSkillsLimit),
		ATSScore:         atsScore,
		RoleFit:          DetermineRoleFit(skills),
		ResumeScore:      resumeScore,
		ResumeStrength:   DetermineStrength(resumeScore),
		Feedback:         GenerateFeedback(flags, scores, len(skills), atsScore),
		KeywordDensity:   KeywordDensity(normalized),
	}

	if jobDescription != "" {
		jobSkills := ExtractSkills(Normalize(jobDescription))
		match := MatchJob(skills, jobSkills)
		report.JobDescription = &jobDescription
		report.MatchedSkills = match.MatchedSkills
		report.MissingSkills = match.MissingSkills
		report.JobMatchScore = &match.MatchScore
	}

	return report
}
