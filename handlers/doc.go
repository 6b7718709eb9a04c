// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quiz API.

# Handler Types

Each handler is a struct built once at startup from the database handle
and configuration:

  - QuizHandler: quiz and question listing
  - ResponseHandler: answer submission

	quizHandler := handlers.NewQuizHandler(db)

# Reading Quizzes

	GET /quizzes                    → ListQuizzes
	GET /quizzes/{quizID}/questions → ListQuestions

Quiz names are passed through normalize before they are returned, so a
name stored as (1,"General Trivia") is served as General Trivia.

# Submitting Answers

	POST /responses → Submit

The body is parsed and validated by submission.Parse, then stored by a
submission.Transactor in one transaction:

  - 400 {"error": ...}: validation failure, nothing written
  - 201 {"inserted": [...], "count": n}: all answers stored
  - 500 {"error": ..., "payload": body}: database failure, rolled back
*/
package handlers
