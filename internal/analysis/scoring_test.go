package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePersonalInfo_FullContactDetails(t *testing.T) {
	text := "Email: john@example.com\nPhone: 9876543210\nLinkedIn: linkedin.com/in/john"
	normalized := Normalize(text)
	flags := DetectSections(normalized)

	score := scorePersonalInfo(text, normalized, flags)

	// email 30 + phone 20 + linkedin 15 + header 10
	assert.Equal(t, 75, score)
}

func TestScorePersonalInfo_NoSignals(t *testing.T) {
	score := scorePersonalInfo("just some text", "just some text", SectionFlags{})

	assert.Equal(t, 0, score)
}

func TestScoreSummary_ZeroWithoutHeader(t *testing.T) {
	score := scoreSummary("no header here", SectionFlags{Summary: false})

	assert.Equal(t, 0, score)
}

func TestScoreSummary_KeywordRichWindow(t *testing.T) {
	normalized := Normalize("Summary experienced professional developer engineer passionate expertise skills")
	flags := SectionFlags{Summary: true}

	score := scoreSummary(normalized, flags)

	// word band 10 + all 7 keywords 40 + no action verbs 0
	assert.Equal(t, 50, score)
}

func TestScoreSummary_ActionVerbsCounted(t *testing.T) {
	normalized := Normalize("Objective: developed created implemented managed led achieved designed solutions")
	flags := SectionFlags{Summary: true}

	score := scoreSummary(normalized, flags)

	// word band 10 + keyword fraction 0 + all 7 action verbs 30
	assert.Equal(t, 40, score)
}

func TestScoreSkills_ZeroWithoutHeaderAndSkills(t *testing.T) {
	score := scoreSkills(SectionFlags{Skills: false}, nil)

	assert.Equal(t, 0, score)
}

func TestScoreSkills_HeaderAndCategoryCoverage(t *testing.T) {
	flags := SectionFlags{Skills: true}
	skills := []string{"javascript", "react", "docker", "python", "git"}

	score := scoreSkills(flags, skills)

	// header 40 + count band (5) 20 + all 3 categories 30
	assert.Equal(t, 90, score)
}

func TestScoreSkills_SkillsWithoutHeader(t *testing.T) {
	score := scoreSkills(SectionFlags{Skills: false}, []string{"python"})

	// no header, 1 skill: band 10 + languages category 10
	assert.Equal(t, 20, score)
}

func TestScoreWorkExperience_ZeroWithoutFlag(t *testing.T) {
	score := scoreWorkExperience("some text", SectionFlags{WorkExperience: false})

	assert.Equal(t, 0, score)
}

func TestScoreWorkExperience_FullyQuantifiedSection(t *testing.T) {
	text := "Work Experience\n" +
		"- Developed and implemented the platform, increased revenue 20%\n" +
		"- Created dashboards, reduced load times 40%\n" +
		"- Designed and built pipelines, improved throughput 3x\n" +
		"- Managed a team of 12\n" +
		"- Led migrations in 2023\n" +
		"- Achieved and optimized cost targets\n"
	normalized := Normalize(text)
	flags := DetectSections(normalized)

	score := scoreWorkExperience(normalized, flags)

	// bullets >=6: 30, all 10 verbs: 30, quantifiers >=3: 30, year token: 10
	assert.Equal(t, 100, score)
}

func TestScoreWorkExperience_FlatScoreWhenHeaderHasNoBody(t *testing.T) {
	score := scoreWorkExperience("work", SectionFlags{WorkExperience: true})

	assert.Equal(t, 20, score)
}

func TestScoreWorkExperience_StopsAtNextSection(t *testing.T) {
	// Bullets after the education header must not count.
	text := Normalize("Experience\n- developed one thing\nEducation\n- bullet\n- bullet\n- bullet\n- bullet\n- bullet")
	flags := SectionFlags{WorkExperience: true}

	score := scoreWorkExperience(text, flags)

	// 1 bullet: 10, 1/10 verbs: 3, no quantifiers, no date
	assert.Equal(t, 13, score)
}

func TestScoreEducation_ZeroWithoutFlag(t *testing.T) {
	assert.Equal(t, 0, scoreEducation("bachelor university 2020", SectionFlags{}))
}

func TestScoreEducation_AllComponents(t *testing.T) {
	normalized := Normalize("Education\nBachelor of Science, Computer Science, Stanford University, 2020, GPA 3.8")
	flags := DetectSections(normalized)

	score := scoreEducation(normalized, flags)

	// degree 40 + institution 30 + year/GPA 20 + field 10
	assert.Equal(t, 100, score)
}

func TestScoreProjects_ZeroWithoutFlag(t *testing.T) {
	assert.Equal(t, 0, scoreProjects("project project project", SectionFlags{}))
}

func TestScoreProjects_MentionsTechAndLinks(t *testing.T) {
	normalized := Normalize("Projects\nBuilt a project using github technologies stack, deployed and built with docker. See https://myapp.io")
	flags := DetectSections(normalized)

	score := scoreProjects(normalized, flags)

	// 1 mention 30 + all 5 tech markers 30 + link 20
	assert.Equal(t, 80, score)
}

func TestScoreCertifications_Bands(t *testing.T) {
	flags := SectionFlags{Certifications: true}

	assert.Equal(t, 100, scoreCertifications("AWS Certified Architect, Kubernetes Certification completed", flags))
	assert.Equal(t, 70, scoreCertifications("certificate of completion", flags))
	assert.Equal(t, 0, scoreCertifications("nothing relevant", flags))
	assert.Equal(t, 0, scoreCertifications("certified", SectionFlags{}))
}

func TestScoreFormatting_EmptyText(t *testing.T) {
	assert.Equal(t, 0, scoreFormatting(""))
}

func TestScoreFormatting_WellStructuredResume(t *testing.T) {
	text := "SUMMARY\nEXPERIENCE\nEDUCATION\nPROJECTS\n" +
		"- one\n- two\n- three\n- four\n- five\n- six\n" +
		strings.Repeat("word ", 390) + "\n"

	score := scoreFormatting(text)

	// newlines 20 + headers 30 + bullets 25 + length 25
	assert.Equal(t, 100, score)
}

func TestScoreFormatting_SparseText(t *testing.T) {
	score := scoreFormatting("short resume\nwith two lines")

	// newlines >0: 10, no headers, no bullets, words >0: 10
	assert.Equal(t, 20, score)
}

func TestOverallScore_WeightedSum(t *testing.T) {
	scores := SectionScores{
		PersonalInfo:   100,
		Summary:        100,
		Skills:         100,
		WorkExperience: 100,
		Education:      100,
		Projects:       100,
		Certifications: 100,
		Formatting:     100,
	}

	assert.Equal(t, 100, OverallScore(scores))
}

func TestOverallScore_PartialSections(t *testing.T) {
	scores := SectionScores{WorkExperience: 100, Skills: 50}

	// 0.30*100 + 0.20*50 = 40
	assert.Equal(t, 40, OverallScore(scores))
}

func TestOverallScore_AllZero(t *testing.T) {
	assert.Equal(t, 0, OverallScore(SectionScores{}))
}

func TestDetermineStrength_Bands(t *testing.T) {
	assert.Equal(t, StrengthBeginner, DetermineStrength(0))
	assert.Equal(t, StrengthBeginner, DetermineStrength(49))
	assert.Equal(t, StrengthIntermediate, DetermineStrength(50))
	assert.Equal(t, StrengthIntermediate, DetermineStrength(74))
	assert.Equal(t, StrengthIndustryReady, DetermineStrength(75))
	assert.Equal(t, StrengthIndustryReady, DetermineStrength(100))
}
