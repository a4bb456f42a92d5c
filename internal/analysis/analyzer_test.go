package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `JOHN DOE
Email: john.doe@example.com | Phone: 9876543210
LinkedIn: linkedin.com/in/johndoe | github.com/johndoe

SUMMARY
Passionate software engineer with a professional background building web
applications, known for expertise in modern tooling as a senior developer.

WORK EXPERIENCE
Senior Developer, Acme Corp, 2021 - 2023
- Developed a customer portal and designed its API, increased signups 40%
- Led and managed a team of 5 engineers
- Implemented CI pipelines, reduced deploy time 60%
- Created monitoring dashboards, achieved 99.9 uptime
- Optimized database queries, improved latency 30%
- Built internal tooling

SKILLS
JavaScript, TypeScript, React, Node.js, Express, MongoDB, PostgreSQL,
Docker, AWS, Git, Kubernetes

EDUCATION
Bachelor of Science in Computer Science, State University, 2019, GPA 3.7

PROJECTS
Built a project tracker using React and Node.js, deployed on AWS.
Technologies: full stack. See github.com/johndoe/tracker

CERTIFICATIONS
AWS Certified Solutions Architect, Kubernetes Certification
`

func TestAnalyze_EmptyInput(t *testing.T) {
	report := Analyze("", "resume.pdf", "")

	assert.Equal(t, SectionFlags{}, report.DetectedSections)
	assert.Equal(t, SectionScores{}, report.SectionScores)
	assert.Equal(t, 0, report.ATSScore)
	assert.Equal(t, 0, report.ResumeScore)
	assert.Equal(t, StrengthBeginner, report.ResumeStrength)
	assert.Equal(t, RoleOther, report.RoleFit)
	assert.Empty(t, report.ExtractedSkills)
	assert.Nil(t, report.JobMatchScore)
	assert.Nil(t, report.JobDescription)

	sections := make([]string, 0, len(report.Feedback))
	for _, item := range report.Feedback {
		sections = append(sections, item.Section)
	}
	assert.Contains(t, sections, "Summary")
	assert.Contains(t, sections, "Work Experience")
	assert.Contains(t, sections, "Education")
}

func TestAnalyze_ContactAndSkillsDetection(t *testing.T) {
	text := "Email: john@example.com\nPhone: 9876543210\nLinkedIn profile available\nSkills: javascript, react, node.js"

	report := Analyze(text, "resume.txt", "")

	assert.True(t, report.DetectedSections.PersonalInfo)
	assert.True(t, report.DetectedSections.Skills)
	assert.Subset(t, report.ExtractedSkills, []string{"javascript", "react", "node.js"})
	assert.GreaterOrEqual(t, report.SectionScores.PersonalInfo, 65)
}

func TestAnalyze_FullResume(t *testing.T) {
	report := Analyze(sampleResume, "john_doe.pdf", "")

	assert.True(t, report.DetectedSections.PersonalInfo)
	assert.True(t, report.DetectedSections.Summary)
	assert.True(t, report.DetectedSections.Skills)
	assert.True(t, report.DetectedSections.WorkExperience)
	assert.True(t, report.DetectedSections.Education)
	assert.True(t, report.DetectedSections.Projects)
	assert.True(t, report.DetectedSections.Certifications)

	assert.GreaterOrEqual(t, len(report.ExtractedSkills), 10)
	assert.GreaterOrEqual(t, report.ResumeScore, 75)
	assert.Equal(t, StrengthIndustryReady, report.ResumeStrength)
	assert.GreaterOrEqual(t, report.ATSScore, 80)
	assert.Equal(t, "john_doe.pdf", report.FileName)
	assert.Equal(t, sampleResume, report.ResumeText)

	// Without a job description, matched skills default to the extracted set.
	assert.Equal(t, report.ExtractedSkills, report.MatchedSkills)
	assert.Nil(t, report.JobMatchScore)
	assert.LessOrEqual(t, len(report.MissingSkills), 10)
}

func TestAnalyze_WithJobDescription(t *testing.T) {
	job := "Looking for a developer with React, Docker and Terraform experience."

	report := Analyze(sampleResume, "resume.pdf", job)

	require.NotNil(t, report.JobMatchScore)
	require.NotNil(t, report.JobDescription)
	assert.Equal(t, job, *report.JobDescription)
	assert.Contains(t, report.MatchedSkills, "react")
	assert.Contains(t, report.MatchedSkills, "docker")
	assert.Contains(t, report.MissingSkills, "terraform")
	assert.GreaterOrEqual(t, *report.JobMatchScore, 1)
	assert.LessOrEqual(t, *report.JobMatchScore, 100)
}

func TestAnalyze_EmptyJobDescriptionMeansAbsent(t *testing.T) {
	report := Analyze(sampleResume, "resume.pdf", "")

	assert.Nil(t, report.JobMatchScore)
	assert.Nil(t, report.JobDescription)
}

func TestAnalyze_Deterministic(t *testing.T) {
	job := "React and Docker role"

	first := Analyze(sampleResume, "resume.pdf", job)
	second := Analyze(sampleResume, "resume.pdf", job)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON)
}

func TestAnalyze_ScoresWithinBounds(t *testing.T) {
	inputs := []string{
		"",
		"x",
		sampleResume,
		"!!!! @@@@ #### 1234567890 e@e.ee",
		"skills skills skills skills skills",
	}

	for _, input := range inputs {
		report := Analyze(input, "f.txt", "")

		for _, score := range []int{
			report.SectionScores.PersonalInfo,
			report.SectionScores.Summary,
			report.SectionScores.Skills,
			report.SectionScores.WorkExperience,
			report.SectionScores.Education,
			report.SectionScores.Projects,
			report.SectionScores.Certifications,
			report.SectionScores.Formatting,
			report.ATSScore,
			report.ResumeScore,
		} {
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestAnalyze_NoCaseInsensitiveDuplicateSkills(t *testing.T) {
	report := Analyze(sampleResume, "resume.pdf", "")

	seen := make(map[string]bool)
	for _, skill := range report.ExtractedSkills {
		assert.False(t, seen[skill], "duplicate skill: %s", skill)
		seen[skill] = true
	}
}
