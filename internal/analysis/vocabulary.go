package analysis

import (
	"regexp"
	"strings"
)

// roleSkills maps each role category to its characteristic skills. Membership
// is checked with case-insensitive exact matching during role classification.
var roleSkills = map[Role][]string{
	RoleFrontend:    {"react", "vue", "angular", "javascript", "typescript", "html", "css", "sass", "tailwind", "next.js", "redux", "webpack", "vite"},
	RoleBackend:     {"node.js", "express", "python", "django", "flask", "java", "spring", "php", "laravel", "ruby", "rails", "sql", "mongodb", "postgresql"},
	RoleFullStack:   {"react", "node.js", "express", "mongodb", "postgresql", "rest api", "graphql", "docker", "aws", "git"},
	RoleDevOps:      {"docker", "kubernetes", "aws", "azure", "gcp", "jenkins", "ci/cd", "terraform", "ansible", "linux"},
	RoleDataScience: {"python", "pandas", "numpy", "tensorflow", "pytorch", "machine learning", "data analysis", "sql", "jupyter"},
}

// commonSkills lists widely used technology terms that belong to the
// extraction vocabulary regardless of role.
var commonSkills = []string{
	"javascript", "typescript", "python", "java", "c++", "c#", "php", "ruby", "go", "rust",
	"react", "vue", "angular", "node.js", "express", "django", "flask", "spring", "laravel",
	"mongodb", "postgresql", "mysql", "redis", "sql", "nosql",
	"html", "css", "sass", "tailwind", "bootstrap",
	"git", "github", "docker", "kubernetes", "aws", "azure", "gcp",
	"rest api", "graphql", "microservices", "agile", "scrum",
	"machine learning", "ai", "data science", "tensorflow", "pytorch",
}

// skillCategories groups a subset of the vocabulary for the skills scorer,
// which rewards resumes covering several categories.
var skillCategories = [][]string{
	{"javascript", "python", "java", "typescript", "c++", "c#"}, // languages
	{"react", "vue", "angular", "node.js", "express", "django"}, // frameworks
	{"git", "docker", "aws", "mongodb", "postgresql"},           // tools
}

// skillMatcher pairs a vocabulary entry with its compiled literal matcher.
type skillMatcher struct {
	name string
	re   *regexp.Regexp
}

// vocabulary is the fixed, ordered extraction vocabulary: role skill lists in
// role precedence order followed by the common terms, deduplicated
// case-insensitively keeping the first occurrence. The order is part of the
// engine contract: extraction output and the "missing skills" default both
// follow it.
var vocabulary = buildVocabulary()

func buildVocabulary() []skillMatcher {
	seen := make(map[string]bool)
	var matchers []skillMatcher
	add := func(skill string) {
		lower := strings.ToLower(skill)
		if seen[lower] {
			return
		}
		seen[lower] = true
		matchers = append(matchers, skillMatcher{name: lower, re: compileSkillPattern(lower)})
	}
	for _, role := range roleOrder {
		for _, skill := range roleSkills[role] {
			add(skill)
		}
	}
	for _, skill := range commonSkills {
		add(skill)
	}
	return matchers
}

// compileSkillPattern builds a case-insensitive literal matcher for a skill.
// Regex metacharacters are escaped so entries like "c++" and "node.js" match
// literally. A word boundary is anchored only where the skill itself starts or
// ends with a word character; "\bc\+\+\b" can never match because "+" is not a
// word character, so the boundary is dropped on that side instead.
func compileSkillPattern(skill string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(skill)
	if isWordChar(skill[0]) {
		pattern = `\b` + pattern
	}
	if isWordChar(skill[len(skill)-1]) {
		pattern += `\b`
	}
	return regexp.MustCompile(`(?i)` + pattern)
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// roleSkillSets indexes roleSkills for constant-time membership checks during
// role classification.
var roleSkillSets = buildRoleSkillSets()

func buildRoleSkillSets() map[Role]map[string]bool {
	sets := make(map[Role]map[string]bool, len(roleSkills))
	for role, skills := range roleSkills {
		set := make(map[string]bool, len(skills))
		for _, skill := range skills {
			set[strings.ToLower(skill)] = true
		}
		sets[role] = set
	}
	return sets
}
