// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"database/sql"
	"fmt"
)

const insertResponse = `
	INSERT INTO responses (participant_id, quiz_id, question_id, submitted_answer)
	VALUES ($1, $2, $3, $4)
	RETURNING id
`

// Result lists the generated response ids in answer order.
type Result struct {
	Inserted []int64
	Count    int
}

// Transactor stores a submission as one response row per answer inside a
// single transaction.
type Transactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) *Transactor {
	return &Transactor{db: db}
}

// Submit writes every answer of sub or none of them. A nil question id
// aborts the transaction with a *ValidationError; any database failure
// aborts it with a *PersistenceError.
func (t *Transactor) Submit(ctx context.Context, sub Submission) (Result, error) {
	if len(sub.Answers) == 0 {
		return Result{}, errAnswers
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, t.fail(sub, fmt.Errorf("failed to begin transaction: %w", err))
	}
	// No-op once committed.
	defer tx.Rollback()

	participantID := sql.NullString{}
	if sub.ParticipantID != nil {
		participantID = sql.NullString{String: *sub.ParticipantID, Valid: true}
	}

	inserted := make([]int64, 0, len(sub.Answers))
	for _, answer := range sub.Answers {
		if answer.QuestionID == nil {
			return Result{}, errMissingQuestionID
		}

		submitted := sql.NullBool{}
		if answer.SubmittedAnswer != nil {
			submitted = sql.NullBool{Bool: *answer.SubmittedAnswer, Valid: true}
		}

		var id int64
		err := tx.QueryRowContext(ctx, insertResponse,
			participantID, sub.QuizID, *answer.QuestionID, submitted,
		).Scan(&id)
		if err != nil {
			return Result{}, t.fail(sub, fmt.Errorf("failed to insert response for question %d: %w", *answer.QuestionID, err))
		}
		inserted = append(inserted, id)
	}

	if err := tx.Commit(); err != nil {
		return Result{}, t.fail(sub, fmt.Errorf("failed to commit responses: %w", err))
	}

	return Result{Inserted: inserted, Count: len(inserted)}, nil
}

func (t *Transactor) fail(sub Submission, cause error) *PersistenceError {
	return &PersistenceError{Cause: cause, Payload: sub.Payload}
}
