// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quiz API.

# Route Registration

NewRouter creates a configured chi router with all endpoints:

	handler := router.NewRouter(db, cfg)

Every request passes through chi's RequestID, RealIP and Recoverer
middleware and a CORS handler built from cfg.CORSOrigins.

# Endpoints

Health:

	GET /health - 200 "OK", or 503 when the database does not answer a ping

Quiz content:

	GET /quizzes                    - All quizzes, names normalized
	GET /quizzes/{quizID}/questions - Questions of one quiz (quizID must be digits)

Answers:

	POST /responses - Store a batch of answers in one transaction

# Handler Initialization

The router creates handler instances with dependency injection:

	quizHandler := handlers.NewQuizHandler(db)
	responseHandler := handlers.NewResponseHandler(db)
*/
package router
