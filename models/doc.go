// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Quiz: id and display name (normalized, may be null)
  - Question: id, question text, and boolean answer (may be null)
  - Response: one stored answer per question per submission

# Request Types

  - SubmitResponsesRequest: participant_id, quiz_id, answers
  - AnswerInput: question_id, submitted_answer (null means unanswered)

# Response Types

  - ListQuizzesResponse: {"quizzes": [...]}
  - ListQuestionsResponse: {"questions": [...]}
  - SubmitResponsesResponse: {"inserted": [...], "count": n}

# Errors

All errors use ErrorResponse:

	{"error": "quiz_id (integer) is required"}

Persistence failures on POST /responses also echo the request body:

	{"error": "...", "payload": {...}}
*/
package models
