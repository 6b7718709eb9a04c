package models

import "encoding/json"

// Domain types

type Quiz struct {
	ID   int64   `json:"id"`
	Quiz *string `json:"quiz"`
}

type Question struct {
	ID       int64  `json:"id"`
	QuizID   int64  `json:"-"`
	Question string `json:"question"`
	Answer   *bool  `json:"answer"`
}

// Response is one persisted answer row.
type Response struct {
	ID              int64   `json:"id"`
	ParticipantID   *string `json:"participant_id"`
	QuizID          int64   `json:"quiz_id"`
	QuestionID      int64   `json:"question_id"`
	SubmittedAnswer *bool   `json:"submitted_answer"`
}

// Request types

// SubmitResponsesRequest mirrors the POST /responses body. Parsing goes
// through the submission package, which checks field types; this type is
// what clients (and tests) marshal.
type SubmitResponsesRequest struct {
	ParticipantID *string       `json:"participant_id,omitempty"`
	QuizID        int64         `json:"quiz_id"`
	Answers       []AnswerInput `json:"answers"`
}

type AnswerInput struct {
	QuestionID      *int64 `json:"question_id,omitempty"`
	SubmittedAnswer *bool  `json:"submitted_answer"`
}

// Response types

type ListQuizzesResponse struct {
	Quizzes []Quiz `json:"quizzes"`
}

type ListQuestionsResponse struct {
	Questions []Question `json:"questions"`
}

type SubmitResponsesResponse struct {
	Inserted []int64 `json:"inserted"`
	Count    int     `json:"count"`
}

// Error response

type ErrorResponse struct {
	Error   string          `json:"error"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
