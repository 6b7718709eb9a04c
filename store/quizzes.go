// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/quiz-responses/models"
	"github.com/danielhkuo/quiz-responses/normalize"
)

type Quizzes struct {
	db *sql.DB
}

func NewQuizzes(db *sql.DB) *Quizzes {
	return &Quizzes{db: db}
}

// List returns every quiz ordered by id with its name normalized.
func (s *Quizzes) List(ctx context.Context) ([]models.Quiz, error) {
	records, err := QueryRecords(ctx, s.db, `SELECT id, quiz FROM quiz ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}

	quizzes := make([]models.Quiz, 0, len(records))
	for _, rec := range records {
		id, _ := rec.Int64("id")
		q := models.Quiz{ID: id}
		if name, ok := normalize.Value(rec["quiz"]); ok {
			q.Quiz = &name
		}
		quizzes = append(quizzes, q)
	}

	return quizzes, nil
}

// Questions returns the questions of quizID ordered by id. An unknown quiz
// yields an empty list.
func (s *Quizzes) Questions(ctx context.Context, quizID int64) ([]models.Question, error) {
	records, err := QueryRecords(ctx, s.db, `
		SELECT id, question, answer
		FROM questions
		WHERE quiz_id = $1
		ORDER BY id
	`, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions for quiz %d: %w", quizID, err)
	}

	questions := make([]models.Question, 0, len(records))
	for _, rec := range records {
		id, _ := rec.Int64("id")
		questions = append(questions, models.Question{
			ID:       id,
			QuizID:   quizID,
			Question: rec.String("question"),
			Answer:   rec.Bool("answer"),
		})
	}

	return questions, nil
}
