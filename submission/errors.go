// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import "encoding/json"

// ValidationError reports a structural problem with client data. It is
// always raised before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PersistenceError wraps a database failure during a submission. The
// transaction has already been rolled back when it is returned.
type PersistenceError struct {
	Cause   error
	Payload json.RawMessage
}

func (e *PersistenceError) Error() string {
	return e.Cause.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var (
	errEmptyBody         = invalid("body", "Empty request body")
	errInvalidJSON       = invalid("body", "Invalid JSON payload")
	errNotObject         = invalid("body", "request body must be a JSON object")
	errQuizID            = invalid("quiz_id", "quiz_id (integer) is required")
	errQuizIDRange       = invalid("quiz_id", "quiz_id is out of range")
	errAnswers           = invalid("answers", "answers (non-empty list) is required")
	errAnswerNotObject   = invalid("answers", "each answer must be a JSON object")
	errMissingQuestionID = invalid("question_id", "question_id missing in one of the answers")
	errQuestionIDType    = invalid("question_id", "question_id must be an integer")
	errQuestionIDRange   = invalid("question_id", "question_id is out of range")
	errSubmittedAnswer   = invalid("submitted_answer", "submitted_answer must be a boolean or null")
	errParticipantID     = invalid("participant_id", "participant_id must be a string or null")
)
