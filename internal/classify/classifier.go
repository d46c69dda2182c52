package classify

import "strings"

// ResponseID selects one literal reply from a surface's response table.
type ResponseID string

const (
	Greeting   ResponseID = "greeting"
	Skills     ResponseID = "skills"
	Experience ResponseID = "experience"
	Education  ResponseID = "education"
	Projects   ResponseID = "projects"
	Interests  ResponseID = "interests"
	Contact    ResponseID = "contact"
	Fallback   ResponseID = "fallback"
)

// Rule binds one keyword group to a response id.
type Rule struct {
	ID       ResponseID
	Keywords []string
}

// Rules returns the dispatch table in priority order. The first rule with
// any matching keyword wins, so order matters.
func Rules() []Rule {
	return []Rule{
		{ID: Greeting, Keywords: []string{"hello", "hi", "hey"}},
		{ID: Skills, Keywords: []string{"skill", "tech", "stack"}},
		{ID: Experience, Keywords: []string{"experience", "work", "job"}},
		{ID: Education, Keywords: []string{"education", "study", "university", "degree"}},
		{ID: Projects, Keywords: []string{"project"}},
		{ID: Interests, Keywords: []string{"hobby", "interest"}},
		{ID: Contact, Keywords: []string{"contact", "email", "reach"}},
	}
}

// Classify maps a free-text utterance to a response id. Matching is a naive
// substring test over the lowercased utterance, so "hi" inside "which"
// counts as a greeting; that sensitivity is intentional and locked by tests.
// The function is total: unmatched input resolves to Fallback.
func Classify(rules []Rule, utterance string) ResponseID {
	normalized := strings.ToLower(utterance)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(normalized, keyword) {
				return rule.ID
			}
		}
	}
	return Fallback
}
