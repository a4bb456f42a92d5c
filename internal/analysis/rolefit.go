package analysis

import "strings"

// DetermineRoleFit classifies the extracted skill set into the role category
// with the most matching skills. Matching is case-insensitive exact
// membership, not substring. Ties resolve to the earlier role in the fixed
// classification order (first-max); zero matches everywhere yields RoleOther.
func DetermineRoleFit(skills []string) Role {
	best := RoleOther
	bestCount := 0
	for _, role := range roleOrder {
		set := roleSkillSets[role]
		count := 0
		for _, skill := range skills {
			if set[strings.ToLower(skill)] {
				count++
			}
		}
		if count > bestCount {
			best = role
			bestCount = count
		}
	}
	return best
}
