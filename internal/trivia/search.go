package trivia

import "strings"

// Search filters questions whose text contains term, case-folded. An empty
// term matches everything. Input order (ascending id from the store) is
// preserved; there is no relevance ranking.
func Search(items []Question, term string) []Question {
	folded := strings.ToLower(term)
	matched := make([]Question, 0, len(items))
	for _, q := range items {
		if strings.Contains(strings.ToLower(q.Text), folded) {
			matched = append(matched, q)
		}
	}
	return matched
}
