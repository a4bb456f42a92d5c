package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CollapsesWhitespaceRuns(t *testing.T) {
	result := Normalize("John  Doe\t\tEngineer")

	assert.Equal(t, "John Doe Engineer", result)
}

func TestNormalize_CollapsesNewlineRuns(t *testing.T) {
	result := Normalize("Summary\n\n\nExperience\n\nEducation")

	assert.Equal(t, "Summary\nExperience\nEducation", result)
}

func TestNormalize_StripsSpacesAroundNewlines(t *testing.T) {
	result := Normalize("line one   \n   line two")

	assert.Equal(t, "line one\nline two", result)
}

func TestNormalize_NormalizesCarriageReturns(t *testing.T) {
	result := Normalize("a\r\nb\rc")

	assert.Equal(t, "a\nb\nc", result)
}

func TestNormalize_TrimsLeadingAndTrailing(t *testing.T) {
	result := Normalize("  \n  resume text  \n  ")

	assert.Equal(t, "resume text", result)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t  "))
}
