package trivia

import (
	"context"
	"fmt"
	"strings"
)

// Store is the persistence surface the engine depends on. Implementations
// return question lists in ascending id order and map an absent row to
// ErrNotFound.
type Store interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CategoryByID(ctx context.Context, id int) (Category, error)
	ListQuestions(ctx context.Context) ([]Question, error)
	QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
	InsertQuestion(ctx context.Context, q NewQuestion) (Question, error)
	DeleteQuestion(ctx context.Context, id int) error
}

// CategorySource resolves categories. Usually the redis-backed CategoryCache
// fronting the store; the store itself also satisfies it.
type CategorySource interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CategoryByID(ctx context.Context, id int) (Category, error)
}

// Engine implements the trivia query contract: pagination, substring search,
// category-scoped retrieval and random non-repeating quiz selection. It holds
// no state between calls; every operation is a pure function of its inputs
// plus a store snapshot.
type Engine struct {
	store    Store
	cats     CategorySource
	rng      Rand
	pageSize int
}

// EngineOptions tunes engine defaults.
type EngineOptions struct {
	PageSize int
}

// NewEngine builds an engine over the given store. cats may be nil, in which
// case categories resolve straight through the store. rng may be nil for the
// system generator.
func NewEngine(store Store, cats CategorySource, rng Rand, opts EngineOptions) *Engine {
	if cats == nil {
		cats = store
	}
	if rng == nil {
		rng = NewRand()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{
		store:    store,
		cats:     cats,
		rng:      rng,
		pageSize: pageSize,
	}
}

// ListCategories returns the id → type mapping of every category.
func (e *Engine) ListCategories(ctx context.Context) (map[int]string, error) {
	cats, err := e.cats.ListCategories(ctx)
	if err != nil {
		return nil, wrapStore(err)
	}
	return categoryMap(cats), nil
}

// ListQuestions returns one page of the full question list along with the
// total count and the category mapping. A page past the end is ErrNotFound.
func (e *Engine) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	questions, err := e.store.ListQuestions(ctx)
	if err != nil {
		return QuestionPage{}, wrapStore(err)
	}
	current := Paginate(questions, page, e.pageSize)
	if len(current) == 0 {
		return QuestionPage{}, fmt.Errorf("questions page %d: %w", page, ErrNotFound)
	}
	cats, err := e.cats.ListCategories(ctx)
	if err != nil {
		return QuestionPage{}, wrapStore(err)
	}
	return QuestionPage{
		Questions:  current,
		Total:      len(questions),
		Categories: categoryMap(cats),
	}, nil
}

// DeleteQuestion removes a question by id and returns the refreshed first
// page plus the new total. An unknown id is ErrNotFound.
func (e *Engine) DeleteQuestion(ctx context.Context, id int) (DeleteResult, error) {
	if err := e.store.DeleteQuestion(ctx, id); err != nil {
		return DeleteResult{}, wrapStore(err)
	}
	questions, err := e.store.ListQuestions(ctx)
	if err != nil {
		return DeleteResult{}, wrapStore(err)
	}
	return DeleteResult{
		Deleted:   id,
		Questions: Paginate(questions, 1, e.pageSize),
		Total:     len(questions),
	}, nil
}

// CreateQuestion inserts a new question. Every field is required; a missing
// or blank one is ErrInvalidInput. The category reference is not pre-checked
// here, the store's constraint reports a dangling id as a store failure.
func (e *Engine) CreateQuestion(ctx context.Context, req CreateRequest) (CreateResult, error) {
	if req.Text == nil || strings.TrimSpace(*req.Text) == "" {
		return CreateResult{}, fmt.Errorf("question text is required: %w", ErrInvalidInput)
	}
	if req.Answer == nil || strings.TrimSpace(*req.Answer) == "" {
		return CreateResult{}, fmt.Errorf("answer is required: %w", ErrInvalidInput)
	}
	if req.CategoryID == nil {
		return CreateResult{}, fmt.Errorf("category is required: %w", ErrInvalidInput)
	}
	if req.Difficulty == nil {
		return CreateResult{}, fmt.Errorf("difficulty is required: %w", ErrInvalidInput)
	}

	created, err := e.store.InsertQuestion(ctx, NewQuestion{
		Text:       *req.Text,
		Answer:     *req.Answer,
		CategoryID: *req.CategoryID,
		Difficulty: *req.Difficulty,
	})
	if err != nil {
		return CreateResult{}, wrapStore(err)
	}
	questions, err := e.store.ListQuestions(ctx)
	if err != nil {
		return CreateResult{}, wrapStore(err)
	}
	return CreateResult{
		Created:   created.ID,
		Questions: Paginate(questions, 1, e.pageSize),
		Total:     len(questions),
	}, nil
}

// SearchQuestions filters questions by case-insensitive substring match over
// the prompt text. A missing searchTerm field is ErrInvalidInput; a present
// empty string matches every question. Zero matches is ErrNotFound.
func (e *Engine) SearchQuestions(ctx context.Context, req SearchRequest) (SearchResult, error) {
	if req.Term == nil {
		return SearchResult{}, fmt.Errorf("searchTerm is required: %w", ErrInvalidInput)
	}
	questions, err := e.store.ListQuestions(ctx)
	if err != nil {
		return SearchResult{}, wrapStore(err)
	}
	matches := Search(questions, *req.Term)
	if len(matches) == 0 {
		return SearchResult{}, fmt.Errorf("no questions match %q: %w", *req.Term, ErrNotFound)
	}
	return SearchResult{
		Questions: Paginate(matches, 1, e.pageSize),
		Total:     len(matches),
	}, nil
}

// QuestionsByCategory returns one page of a category's questions. The
// category is resolved first, so an unknown id is ErrNotFound even when the
// question set would be empty anyway.
func (e *Engine) QuestionsByCategory(ctx context.Context, categoryID, page int) (CategoryPage, error) {
	cat, err := e.cats.CategoryByID(ctx, categoryID)
	if err != nil {
		return CategoryPage{}, wrapStore(err)
	}
	questions, err := e.store.QuestionsByCategory(ctx, categoryID)
	if err != nil {
		return CategoryPage{}, wrapStore(err)
	}
	return CategoryPage{
		Questions:       Paginate(questions, page, e.pageSize),
		Total:           len(questions),
		CurrentCategory: cat.Type,
	}, nil
}

// NextQuizQuestion draws one question uniformly at random from the eligible
// set: questions in scope minus the excluded ids. The exclusion applies to
// every scope, including AllCategories. An exhausted pool or an unknown
// category is ErrNotFound.
func (e *Engine) NextQuizQuestion(ctx context.Context, req QuizRequest) (Question, error) {
	if req.Previous == nil {
		return Question{}, fmt.Errorf("previous_questions is required: %w", ErrInvalidInput)
	}
	if req.Category == nil || req.Category.ID == nil {
		return Question{}, fmt.Errorf("quiz_category is required: %w", ErrInvalidInput)
	}
	scope := *req.Category.ID

	var (
		pool []Question
		err  error
	)
	if scope == AllCategories {
		pool, err = e.store.ListQuestions(ctx)
	} else {
		if _, err = e.cats.CategoryByID(ctx, scope); err != nil {
			return Question{}, wrapStore(err)
		}
		pool, err = e.store.QuestionsByCategory(ctx, scope)
	}
	if err != nil {
		return Question{}, wrapStore(err)
	}

	excluded := make(map[int]struct{}, len(*req.Previous))
	for _, id := range *req.Previous {
		excluded[id] = struct{}{}
	}
	eligible := pool[:0:0]
	for _, q := range pool {
		if _, seen := excluded[q.ID]; !seen {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return Question{}, fmt.Errorf("quiz pool exhausted: %w", ErrNotFound)
	}
	return eligible[e.rng.IntN(len(eligible))], nil
}

func categoryMap(cats []Category) map[int]string {
	m := make(map[int]string, len(cats))
	for _, c := range cats {
		m[c.ID] = c.Type
	}
	return m
}
