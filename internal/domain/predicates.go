package domain

import "strings"

// CandidateNameContains matches candidates whose name contains any keyword, ignoring case.
func CandidateNameContains(keywords []string) Predicate[Candidate] {
	lowered := lowerAll(keywords)
	return func(c Candidate) bool {
		return containsAny(strings.ToLower(c.Name), lowered)
	}
}

// PositionTitleContains matches positions whose title contains any keyword, ignoring case.
func PositionTitleContains(keywords []string) Predicate[Position] {
	lowered := lowerAll(keywords)
	return func(p Position) bool {
		return containsAny(strings.ToLower(p.Title), lowered)
	}
}

// InterviewContains matches interviews whose position title or any candidate
// name contains any keyword, ignoring case.
func InterviewContains(keywords []string) Predicate[Interview] {
	lowered := lowerAll(keywords)
	return func(i Interview) bool {
		if containsAny(strings.ToLower(i.PositionTitle()), lowered) {
			return true
		}
		for _, name := range i.CandidateNames() {
			if containsAny(strings.ToLower(name), lowered) {
				return true
			}
		}
		return false
	}
}

func lowerAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, strings.ToLower(k))
		}
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
