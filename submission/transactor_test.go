// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/danielhkuo/quiz-responses/models"
	"github.com/danielhkuo/quiz-responses/testutil"
)

func loadResponse(t *testing.T, db *sql.DB, id int64) models.Response {
	t.Helper()

	r := models.Response{ID: id}
	err := db.QueryRow(`
		SELECT participant_id, quiz_id, question_id, submitted_answer
		FROM responses WHERE id = $1
	`, id).Scan(&r.ParticipantID, &r.QuizID, &r.QuestionID, &r.SubmittedAnswer)
	if err != nil {
		t.Fatalf("Failed to load response %d: %v", id, err)
	}
	return r
}

func TestSubmit_EmptyAnswers(t *testing.T) {
	// No database: the precondition fails before any I/O
	tr := NewTransactor(nil)

	for _, quizID := range []int64{0, 1, -5, 1 << 40} {
		_, err := tr.Submit(context.Background(), Submission{QuizID: quizID})

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("quiz %d: expected *ValidationError, got %v", quizID, err)
		}
		if verr.Field != "answers" {
			t.Errorf("quiz %d: expected answers constraint, got %s", quizID, verr.Field)
		}
	}
}

func TestSubmit_StoresAnswersInOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)

	quizID := testutil.CreateTestQuiz(t, db, "General Trivia")
	q1 := testutil.AddTestQuestion(t, db, quizID, "Is water wet?", testutil.Bool(true))
	q2 := testutil.AddTestQuestion(t, db, quizID, "Is the sun cold?", testutil.Bool(false))

	participant := testutil.NewParticipantID()
	sub := Submission{
		ParticipantID: &participant,
		QuizID:        quizID,
		Answers: []Answer{
			{QuestionID: testutil.Int64(q2), SubmittedAnswer: testutil.Bool(false)},
			{QuestionID: testutil.Int64(q1), SubmittedAnswer: nil},
		},
	}

	res, err := NewTransactor(db).Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if res.Count != 2 || len(res.Inserted) != 2 {
		t.Fatalf("Expected 2 inserted ids, got %+v", res)
	}
	if res.Inserted[0] >= res.Inserted[1] {
		t.Errorf("Expected ids in insert order, got %v", res.Inserted)
	}

	first := loadResponse(t, db, res.Inserted[0])
	if first.QuestionID != q2 || first.SubmittedAnswer == nil || *first.SubmittedAnswer {
		t.Errorf("First row should be question %d answered false, got %+v", q2, first)
	}
	if first.ParticipantID == nil || *first.ParticipantID != participant || first.QuizID != quizID {
		t.Errorf("First row has wrong participant or quiz: %+v", first)
	}

	second := loadResponse(t, db, res.Inserted[1])
	if second.QuestionID != q1 || second.SubmittedAnswer != nil {
		t.Errorf("Second row should be question %d unanswered, got %+v", q1, second)
	}

	if n := testutil.CountResponses(t, db, quizID); n != 2 {
		t.Errorf("Expected 2 stored responses, got %d", n)
	}
}

func TestSubmit_NullParticipant(t *testing.T) {
	db := testutil.SetupTestDB(t)

	quizID := testutil.CreateTestQuiz(t, db, "Anonymous")
	q1 := testutil.AddTestQuestion(t, db, quizID, "Anonymous?", nil)

	res, err := NewTransactor(db).Submit(context.Background(), Submission{
		QuizID:  quizID,
		Answers: []Answer{{QuestionID: testutil.Int64(q1), SubmittedAnswer: testutil.Bool(true)}},
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	row := loadResponse(t, db, res.Inserted[0])
	if row.ParticipantID != nil {
		t.Errorf("Expected NULL participant_id, got %q", *row.ParticipantID)
	}
}

func TestSubmit_MissingQuestionIDRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)

	quizID := testutil.CreateTestQuiz(t, db, "Atomicity")
	q1 := testutil.AddTestQuestion(t, db, quizID, "First?", testutil.Bool(true))

	sub := Submission{
		QuizID: quizID,
		Answers: []Answer{
			{QuestionID: testutil.Int64(q1), SubmittedAnswer: testutil.Bool(true)},
			{SubmittedAnswer: testutil.Bool(true)},
		},
	}

	_, err := NewTransactor(db).Submit(context.Background(), sub)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %v", err)
	}
	if verr.Field != "question_id" {
		t.Errorf("Expected question_id constraint, got %s", verr.Field)
	}

	if n := testutil.CountResponses(t, db, quizID); n != 0 {
		t.Errorf("Expected no stored responses after rollback, got %d", n)
	}
}

func TestSubmit_DatabaseFailureRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)

	quizID := testutil.CreateTestQuiz(t, db, "Constraints")
	q1 := testutil.AddTestQuestion(t, db, quizID, "Real question?", testutil.Bool(true))

	sub := Submission{
		QuizID: quizID,
		Answers: []Answer{
			{QuestionID: testutil.Int64(q1), SubmittedAnswer: testutil.Bool(true)},
			// No such question: foreign key violation
			{QuestionID: testutil.Int64(q1 + 1000), SubmittedAnswer: testutil.Bool(false)},
		},
		Payload: []byte(`{"quiz_id":1}`),
	}

	_, err := NewTransactor(db).Submit(context.Background(), sub)

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *PersistenceError, got %v", err)
	}
	if perr.Cause == nil || errors.Unwrap(perr) != perr.Cause {
		t.Error("Expected PersistenceError to unwrap to its cause")
	}
	if string(perr.Payload) != `{"quiz_id":1}` {
		t.Errorf("Expected payload to be carried, got %s", perr.Payload)
	}

	if n := testutil.CountResponses(t, db, quizID); n != 0 {
		t.Errorf("Expected no stored responses after rollback, got %d", n)
	}
}

func TestSubmit_ClosedDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	db.Close()

	_, err := NewTransactor(db).Submit(context.Background(), Submission{
		QuizID:  1,
		Answers: []Answer{{QuestionID: testutil.Int64(1)}},
	})

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *PersistenceError, got %v", err)
	}
}

func TestSubmit_IndependentSubmissions(t *testing.T) {
	db := testutil.SetupTestDB(t)

	quizID := testutil.CreateTestQuiz(t, db, "Repeat")
	q1 := testutil.AddTestQuestion(t, db, quizID, "Again?", testutil.Bool(true))

	tr := NewTransactor(db)
	for i := 0; i < 3; i++ {
		participant := testutil.NewParticipantID()
		_, err := tr.Submit(context.Background(), Submission{
			ParticipantID: &participant,
			QuizID:        quizID,
			Answers:       []Answer{{QuestionID: testutil.Int64(q1), SubmittedAnswer: testutil.Bool(i%2 == 0)}},
		})
		if err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	if n := testutil.CountResponses(t, db, quizID); n != 3 {
		t.Errorf("Expected 3 stored responses, got %d", n)
	}
}
