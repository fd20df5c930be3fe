package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/rahulathreya/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the question bank over REST. Each handler parses the
// request, delegates to the engine and maps its failure kind to a status
// code: 400 for an undecodable body, 404 for ErrNotFound, 422 for
// ErrInvalidInput and store failures.
type HTTPHandlers struct {
	engine *Engine
	logger zerolog.Logger
}

// NewHTTPHandlers constructs the REST handlers for the question bank.
func NewHTTPHandlers(engine *Engine, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		engine: engine,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// ListCategories responds with the full category mapping.
// Route: GET /categories
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.engine.ListCategories(r.Context())
	if err != nil {
		h.respondEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":    true,
		"categories": categories,
	})
}

// ListQuestions responds with one page of questions plus totals.
// Route: GET /questions?page=N
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	result, err := h.engine.ListQuestions(r.Context(), page)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
		"categories":      result.Categories,
	})
}

// DeleteQuestion removes a question and responds with the refreshed page.
// Route: DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w, httperrors.ErrCodeQuestionNotFound, "question id must be an integer")
		return
	}
	result, err := h.engine.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":         true,
		"deleted":         result.Deleted,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// CreateQuestion inserts a new question from a JSON body.
// Route: POST /questions
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := h.engine.CreateQuestion(r.Context(), req)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":         true,
		"created":         result.Created,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// SearchQuestions responds with questions whose text contains the term.
// Route: POST /questions/search
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := h.engine.SearchQuestions(r.Context(), req)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// QuestionsByCategory responds with one page of a category's questions.
// Route: GET /categories/{id}/questions
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w, httperrors.ErrCodeCategoryNotFound, "category id must be an integer")
		return
	}
	result, err := h.engine.QuestionsByCategory(r.Context(), id, pageParam(r))
	if err != nil {
		h.respondEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": result.CurrentCategory,
	})
}

// PlayQuiz responds with one random unseen question for the given scope.
// Route: POST /quizzes
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if !decodeBody(w, r, &req) {
		return
	}
	question, err := h.engine.NextQuizQuestion(r.Context(), req)
	if err != nil {
		h.respondEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":  true,
		"question": question,
	})
}

func (h *HTTPHandlers) respondEngineError(w http.ResponseWriter, err error) {
	var storeErr *StoreError
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput):
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeInvalidRequest, err.Error())
	case errors.As(err, &storeErr):
		h.logger.Error().Err(storeErr.Err).Msg("store failure")
		httperrors.RespondUnprocessable(w, httperrors.ErrCodeStoreFailure, "request could not be processed")
	default:
		h.logger.Error().Err(err).Msg("unexpected engine error")
		httperrors.RespondInternalError(w, "internal error")
	}
}

// pageParam reads the page query parameter, falling back to 1 when it is
// absent or not a positive integer.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeBadRequest, "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
