package trivia

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	categories []Category
	questions  []Question
	nextID     int

	listErr         error
	categoryLookups int
	categoryScans   int
}

func (s *stubStore) ListCategories(ctx context.Context) ([]Category, error) {
	return s.categories, nil
}

func (s *stubStore) CategoryByID(ctx context.Context, id int) (Category, error) {
	s.categoryLookups++
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
}

func (s *stubStore) ListQuestions(ctx context.Context) ([]Question, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.questions, nil
}

func (s *stubStore) QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	s.categoryScans++
	var qs []Question
	for _, q := range s.questions {
		if q.CategoryID == categoryID {
			qs = append(qs, q)
		}
	}
	return qs, nil
}

func (s *stubStore) InsertQuestion(ctx context.Context, q NewQuestion) (Question, error) {
	s.nextID++
	inserted := Question{
		ID:         s.nextID,
		Text:       q.Text,
		Answer:     q.Answer,
		CategoryID: q.CategoryID,
		Difficulty: q.Difficulty,
	}
	s.questions = append(s.questions, inserted)
	return inserted, nil
}

func (s *stubStore) DeleteQuestion(ctx context.Context, id int) error {
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("question %d: %w", id, ErrNotFound)
}

// stubRand replays a fixed sequence of picks.
type stubRand struct {
	picks []int
	i     int
}

func (r *stubRand) IntN(n int) int {
	if len(r.picks) == 0 {
		return 0
	}
	pick := r.picks[r.i%len(r.picks)] % n
	r.i++
	return pick
}

// seedStore mirrors the seeded bank: six categories, 19 questions. Science
// holds ids 16-18, Sports ids 6-7.
func seedStore() *stubStore {
	store := &stubStore{
		categories: []Category{
			{ID: 1, Type: "Science"},
			{ID: 2, Type: "Art"},
			{ID: 3, Type: "Geography"},
			{ID: 4, Type: "History"},
			{ID: 5, Type: "Entertainment"},
			{ID: 6, Type: "Sports"},
		},
	}
	texts := []struct {
		text     string
		category int
	}{
		{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", 4},
		{"What boxer's original name is Cassius Clay?", 4},
		{"What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", 5},
		{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", 5},
		{"What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", 5},
		{"Which is the only team to play in every soccer World Cup tournament?", 6},
		{"Which country won the first ever soccer World Cup in 1930?", 6},
		{"Who invented Peanut Butter?", 4},
		{"What is the largest lake in Africa?", 3},
		{"In which royal palace would you find the Hall of Mirrors?", 3},
		{"The Taj Mahal is located in which Indian city?", 3},
		{"Which Dutch graphic artist, initials M C, was a creator of optical illusions?", 2},
		{"La Giaconda is better known as what?", 2},
		{"How many paintings did Van Gogh sell in his lifetime?", 2},
		{"Which dung beetle was worshipped by the ancient Egyptians?", 4},
		{"What is the heaviest organ in the human body?", 1},
		{"Who discovered penicillin?", 1},
		{"Hematology is a branch of medicine involving the study of what?", 1},
		{"What U.S. state contains an area known as the Upper Peninsula?", 3},
	}
	for i, entry := range texts {
		store.questions = append(store.questions, Question{
			ID:         i + 1,
			Text:       entry.text,
			Answer:     "answer",
			CategoryID: entry.category,
			Difficulty: 3,
		})
	}
	store.nextID = len(texts)
	return store
}

func newTestEngine(store *stubStore, rng Rand) *Engine {
	return NewEngine(store, nil, rng, EngineOptions{PageSize: 10})
}

func ptr[T any](v T) *T { return &v }

func TestListCategories(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	categories, err := engine.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Len(t, categories, 6)
	assert.Equal(t, "Science", categories[1])
	assert.Equal(t, "Sports", categories[6])
}

func TestListQuestionsFirstPage(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	page, err := engine.ListQuestions(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, page.Questions, 10)
	assert.Equal(t, 19, page.Total)
	assert.Len(t, page.Categories, 6)
	assert.Equal(t, 1, page.Questions[0].ID)
}

func TestListQuestionsLastPageIsPartial(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	page, err := engine.ListQuestions(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, page.Questions, 9)
	assert.Equal(t, 11, page.Questions[0].ID)
}

func TestListQuestionsPageBeyondRange(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	_, err := engine.ListQuestions(context.Background(), 999)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListQuestionsStoreFailure(t *testing.T) {
	store := seedStore()
	store.listErr = errors.New("connection refused")
	engine := newTestEngine(store, nil)

	_, err := engine.ListQuestions(context.Background(), 1)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestQuestionsByCategoryFilters(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	page, err := engine.QuestionsByCategory(context.Background(), 1, 1)

	require.NoError(t, err)
	assert.Equal(t, "Science", page.CurrentCategory)
	assert.Equal(t, 3, page.Total)
	for _, q := range page.Questions {
		assert.Equal(t, 1, q.CategoryID)
	}
}

func TestQuestionsByCategoryUnknownChecksBeforeScan(t *testing.T) {
	store := seedStore()
	engine := newTestEngine(store, nil)

	_, err := engine.QuestionsByCategory(context.Background(), 42, 1)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, store.categoryScans, "question scan must not run for an unknown category")
}

func TestQuestionsByCategoryEmptyPageIsNotAnError(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	page, err := engine.QuestionsByCategory(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.Empty(t, page.Questions)
	assert.Equal(t, 3, page.Total)
}

func TestCreateQuestionAssignsID(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)
	req := CreateRequest{
		Text:       ptr("Test question"),
		Answer:     ptr("Test answer"),
		CategoryID: ptr(1),
		Difficulty: ptr(4),
	}

	result, err := engine.CreateQuestion(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 20, result.Created)
	assert.Equal(t, 20, result.Total)

	page, err := engine.ListQuestions(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 20, page.Total)
	assert.Equal(t, "Test question", page.Questions[len(page.Questions)-1].Text)
}

func TestCreateQuestionMissingFields(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)
	valid := CreateRequest{
		Text:       ptr("Test question"),
		Answer:     ptr("Test answer"),
		CategoryID: ptr(1),
		Difficulty: ptr(4),
	}

	cases := map[string]func(CreateRequest) CreateRequest{
		"question":       func(r CreateRequest) CreateRequest { r.Text = nil; return r },
		"blank question": func(r CreateRequest) CreateRequest { r.Text = ptr("  "); return r },
		"answer":         func(r CreateRequest) CreateRequest { r.Answer = nil; return r },
		"category":       func(r CreateRequest) CreateRequest { r.CategoryID = nil; return r },
		"difficulty":     func(r CreateRequest) CreateRequest { r.Difficulty = nil; return r },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := engine.CreateQuestion(context.Background(), mutate(valid))
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDeleteQuestionRefreshesPage(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	result, err := engine.DeleteQuestion(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, 18, result.Total)
	require.Len(t, result.Questions, 10)
	assert.Equal(t, 2, result.Questions[0].ID)
}

func TestDeleteQuestionUnknown(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	_, err := engine.DeleteQuestion(context.Background(), 999)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchQuestionsMissingTerm(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	_, err := engine.SearchQuestions(context.Background(), SearchRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearchQuestionsEmptyTermMatchesAll(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	result, err := engine.SearchQuestions(context.Background(), SearchRequest{Term: ptr("")})

	require.NoError(t, err)
	assert.Equal(t, 19, result.Total)
	assert.Len(t, result.Questions, 10)
}

func TestSearchQuestionsSubstring(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	result, err := engine.SearchQuestions(context.Background(), SearchRequest{Term: ptr("title")})

	require.NoError(t, err)
	// "entitled" and "title" both contain the term.
	assert.Equal(t, 2, result.Total)
}

func TestSearchQuestionsNoMatch(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	_, err := engine.SearchQuestions(context.Background(), SearchRequest{Term: ptr("xylophone")})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextQuizQuestionMissingFields(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	_, err := engine.NextQuizQuestion(context.Background(), QuizRequest{
		Category: &QuizCategory{ID: ptr(1)},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.NextQuizQuestion(context.Background(), QuizRequest{
		Previous: &[]int{},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.NextQuizQuestion(context.Background(), QuizRequest{
		Previous: &[]int{},
		Category: &QuizCategory{},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNextQuizQuestionUnknownCategory(t *testing.T) {
	engine := newTestEngine(seedStore(), nil)

	_, err := engine.NextQuizQuestion(context.Background(), QuizRequest{
		Previous: &[]int{},
		Category: &QuizCategory{ID: ptr(42)},
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextQuizQuestionNeverRepeats(t *testing.T) {
	engine := newTestEngine(seedStore(), NewRand())

	// Sports holds ids 6 and 7; excluding 6 must always yield 7.
	for range 50 {
		q, err := engine.NextQuizQuestion(context.Background(), QuizRequest{
			Previous: &[]int{6},
			Category: &QuizCategory{ID: ptr(6)},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, q.ID)
	}
}

func TestNextQuizQuestionAllScopeHonorsExclusion(t *testing.T) {
	engine := newTestEngine(seedStore(), NewRand())

	excluded := make([]int, 0, 18)
	for id := 1; id <= 18; id++ {
		excluded = append(excluded, id)
	}

	q, err := engine.NextQuizQuestion(context.Background(), QuizRequest{
		Previous: &excluded,
		Category: &QuizCategory{ID: ptr(AllCategories)},
	})

	require.NoError(t, err)
	assert.Equal(t, 19, q.ID)
}

func TestNextQuizQuestionExhaustedPool(t *testing.T) {
	engine := newTestEngine(seedStore(), NewRand())

	all := make([]int, 0, 19)
	for id := 1; id <= 19; id++ {
		all = append(all, id)
	}

	_, err := engine.NextQuizQuestion(context.Background(), QuizRequest{
		Previous: &all,
		Category: &QuizCategory{ID: ptr(AllCategories)},
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextQuizQuestionDeterministicPick(t *testing.T) {
	rng := &stubRand{picks: []int{2, 0, 1}}
	engine := newTestEngine(seedStore(), rng)

	// Science holds ids 16, 17, 18 in order; the stub draws index 2 first.
	q, err := engine.NextQuizQuestion(context.Background(), QuizRequest{
		Previous: &[]int{},
		Category: &QuizCategory{ID: ptr(1)},
	})

	require.NoError(t, err)
	assert.Equal(t, 18, q.ID)
}
