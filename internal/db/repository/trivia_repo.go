package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulathreya/trivia-api/internal/trivia"
)

// TriviaRepository implements the engine's Store interface on Postgres.
// Question scans are ordered by id so pagination windows are stable.
type TriviaRepository struct {
	pool *pgxpool.Pool
}

var _ trivia.Store = (*TriviaRepository)(nil)

func NewTriviaRepository(pool *pgxpool.Pool) *TriviaRepository {
	return &TriviaRepository{pool: pool}
}

func (r *TriviaRepository) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, type
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return cats, nil
}

func (r *TriviaRepository) CategoryByID(ctx context.Context, id int) (trivia.Category, error) {
	var c trivia.Category
	err := r.pool.QueryRow(ctx, `
		SELECT id, type
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Category{}, fmt.Errorf("category %d: %w", id, trivia.ErrNotFound)
		}
		return trivia.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}

func (r *TriviaRepository) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category_id, difficulty
		FROM questions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *TriviaRepository) QuestionsByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category_id, difficulty
		FROM questions
		WHERE category_id = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions in category %d: %w", categoryID, err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *TriviaRepository) InsertQuestion(ctx context.Context, q trivia.NewQuestion) (trivia.Question, error) {
	inserted := trivia.Question{
		Text:       q.Text,
		Answer:     q.Answer,
		CategoryID: q.CategoryID,
		Difficulty: q.Difficulty,
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO questions (question, answer, category_id, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, q.Text, q.Answer, q.CategoryID, q.Difficulty).Scan(&inserted.ID)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return inserted, nil
}

func (r *TriviaRepository) DeleteQuestion(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM questions
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %d: %w", id, trivia.ErrNotFound)
	}
	return nil
}

func scanQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	var qs []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Answer, &q.CategoryID, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		qs = append(qs, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return qs, nil
}
