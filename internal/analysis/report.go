// Package analysis implements the resume evaluation engine: section detection,
// skill extraction, heuristic scoring, role classification, and job matching
// over plain resume text. Every function in this package is a pure function of
// its inputs; the package holds no mutable state beyond matchers compiled once
// at init.
package analysis

// Role is a best-fit role category derived from extracted skills.
type Role string

// Role categories, in classification precedence order.
const (
	RoleFrontend    Role = "Frontend"
	RoleBackend     Role = "Backend"
	RoleFullStack   Role = "Full Stack"
	RoleDevOps      Role = "DevOps"
	RoleDataScience Role = "Data Science"
	RoleOther       Role = "Other"
)

// roleOrder fixes the tie-break order for role classification: when two roles
// match the same number of skills, the earlier entry wins.
var roleOrder = []Role{RoleFrontend, RoleBackend, RoleFullStack, RoleDevOps, RoleDataScience}

// Strength is a qualitative tier derived from the overall resume score.
type Strength string

const (
	StrengthBeginner      Strength = "Beginner"
	StrengthIntermediate  Strength = "Intermediate"
	StrengthIndustryReady Strength = "Industry Ready"
)

// Severity classifies a feedback item.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Priority ranks how urgently a feedback item should be addressed.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// SectionFlags records which conventional resume sections were detected.
// All seven sections are always present; absent sections are explicit false.
type SectionFlags struct {
	PersonalInfo   bool `json:"personalInfo"`
	Summary        bool `json:"summary"`
	Skills         bool `json:"skills"`
	WorkExperience bool `json:"workExperience"`
	Education      bool `json:"education"`
	Projects       bool `json:"projects"`
	Certifications bool `json:"certifications"`
}

// SectionScores holds the 0-100 score for each section plus formatting.
type SectionScores struct {
	PersonalInfo   int `json:"personalInfo"`
	Summary        int `json:"summary"`
	Skills         int `json:"skills"`
	WorkExperience int `json:"workExperience"`
	Education      int `json:"education"`
	Projects       int `json:"projects"`
	Certifications int `json:"certifications"`
	Formatting     int `json:"formatting"`
}

// FeedbackItem is a single actionable finding about the resume.
type FeedbackItem struct {
	Section  string   `json:"section"`
	Type     Severity `json:"type"`
	Message  string   `json:"message"`
	Priority Priority `json:"priority"`
}

// Report is the complete result of analyzing one resume. It is the only
// contract the surrounding application (storage, API, CLI) depends on.
type Report struct {
	ResumeText       string             `json:"resumeText"`
	FileName         string             `json:"fileName"`
	JobDescription   *string            `json:"jobDescription"`
	DetectedSections SectionFlags       `json:"detectedSections"`
	SectionScores    SectionScores      `json:"sectionScores"`
	ExtractedSkills  []string           `json:"extractedSkills"`
	MatchedSkills    []string           `json:"matchedSkills"`
	MissingSkills    []string           `json:"missingSkills"`
	JobMatchScore    *int               `json:"jobMatchScore"`
	ATSScore         int                `json:"atsScore"`
	RoleFit          Role               `json:"roleFit"`
	ResumeScore      int                `json:"resumeScore"`
	ResumeStrength   Strength           `json:"resumeStrength"`
	Feedback         []FeedbackItem     `json:"feedback"`
	KeywordDensity   map[string]float64 `json:"keywordDensity"`
}
