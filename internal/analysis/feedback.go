package analysis

// GenerateFeedback derives actionable findings from the section scores,
// detection flags, skill count, and ATS score. Rules are evaluated in a fixed
// order and each appends at most one item; the resulting order is part of the
// report contract and is never re-sorted.
func GenerateFeedback(flags SectionFlags, scores SectionScores, skillCount, atsScore int) []FeedbackItem {
	feedback := make([]FeedbackItem, 0, 8)

	if scores.PersonalInfo < 70 {
		feedback = append(feedback, FeedbackItem{
			Section:  "Personal Information",
			Type:     SeverityWarning,
			Message:  "Ensure your resume includes email, phone number, and LinkedIn profile for better visibility.",
			Priority: PriorityHigh,
		})
	}

	if !flags.Summary {
		feedback = append(feedback, FeedbackItem{
			Section:  "Summary",
			Type:     SeverityError,
			Message:  "Add a professional summary section (50-150 words) highlighting your key qualifications and experience.",
			Priority: PriorityHigh,
		})
	} else if scores.Summary < 60 {
		feedback = append(feedback, FeedbackItem{
			Section:  "Summary",
			Type:     SeverityWarning,
			Message:  "Improve your summary by including more action verbs and quantifiable achievements.",
			Priority: PriorityMedium,
		})
	}

	if skillCount < 5 {
		feedback = append(feedback, FeedbackItem{
			Section:  "Skills",
			Type:     SeverityWarning,
			Message:  "Include more relevant technical skills. Aim for 10-15 skills across different categories.",
			Priority: PriorityHigh,
		})
	}

	if !flags.WorkExperience {
		feedback = append(feedback, FeedbackItem{
			Section:  "Work Experience",
			Type:     SeverityError,
			Message:  "Work experience section is missing. This is critical for most job applications.",
			Priority: PriorityHigh,
		})
	} else if scores.WorkExperience < 60 {
		feedback = append(feedback, FeedbackItem{
			Section:  "Work Experience",
			Type:     SeverityWarning,
			Message:  "Enhance your work experience with more bullet points, action verbs, and quantifiable achievements.",
			Priority: PriorityHigh,
		})
	}

	if !flags.Education {
		feedback = append(feedback, FeedbackItem{
			Section:  "Education",
			Type:     SeverityError,
			Message:  "Add your education details including degree, university, and graduation year.",
			Priority: PriorityHigh,
		})
	}

	if !flags.Projects && skillCount > 0 {
		feedback = append(feedback, FeedbackItem{
			Section:  "Projects",
			Type:     SeverityInfo,
			Message:  "Consider adding a projects section to showcase your practical experience and skills.",
			Priority: PriorityMedium,
		})
	}

	if atsScore < 60 {
		feedback = append(feedback, FeedbackItem{
			Section:  "ATS Compatibility",
			Type:     SeverityWarning,
			Message:  "Your resume has low ATS compatibility. Ensure all required sections are present and properly formatted.",
			Priority: PriorityHigh,
		})
	}

	if scores.Formatting < 60 {
		feedback = append(feedback, FeedbackItem{
			Section:  "Formatting",
			Type:     SeverityWarning,
			Message:  "Improve resume formatting with consistent spacing, clear section headers, and bullet points.",
			Priority: PriorityMedium,
		})
	}

	return feedback
}
