package trivia

// AllCategories is the quiz scope sentinel meaning no category restriction.
const AllCategories = 0

// Question is a single trivia prompt delivered to clients.
type Question struct {
	ID         int    `json:"id"`
	Text       string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is a pre-seeded question grouping.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// NewQuestion carries the fields of a question to be inserted. The store
// assigns the id.
type NewQuestion struct {
	Text       string
	Answer     string
	CategoryID int
	Difficulty int
}

// CreateRequest is the decoded body of a question creation call. Pointer
// fields distinguish absent JSON fields from zero values.
type CreateRequest struct {
	Text       *string `json:"question"`
	Answer     *string `json:"answer"`
	CategoryID *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// SearchRequest is the decoded body of a search call. A nil Term means the
// field was missing from the request.
type SearchRequest struct {
	Term *string `json:"searchTerm"`
}

// QuizCategory scopes a quiz draw. ID 0 selects all categories.
type QuizCategory struct {
	ID   *int   `json:"id"`
	Type string `json:"type"`
}

// QuizRequest is the decoded body of a quiz call.
type QuizRequest struct {
	Previous *[]int        `json:"previous_questions"`
	Category *QuizCategory `json:"quiz_category"`
}

// QuestionPage is one page of the full question list.
type QuestionPage struct {
	Questions  []Question
	Total      int
	Categories map[int]string
}

// DeleteResult reports a deletion together with the refreshed first page.
type DeleteResult struct {
	Deleted   int
	Questions []Question
	Total     int
}

// CreateResult reports an insertion together with the refreshed first page.
type CreateResult struct {
	Created   int
	Questions []Question
	Total     int
}

// SearchResult is the first page of matches plus the full match count.
type SearchResult struct {
	Questions []Question
	Total     int
}

// CategoryPage is one page of a category's questions.
type CategoryPage struct {
	Questions       []Question
	Total           int
	CurrentCategory string
}
