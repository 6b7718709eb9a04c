// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/quiz-responses/middleware"
	"github.com/danielhkuo/quiz-responses/models"
	"github.com/danielhkuo/quiz-responses/store"
)

type QuizHandler struct {
	quizzes *store.Quizzes
}

func NewQuizHandler(db *sql.DB) *QuizHandler {
	return &QuizHandler{quizzes: store.NewQuizzes(db)}
}

// ListQuizzes handles GET /quizzes
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.quizzes.List(r.Context())
	if err != nil {
		slog.Error("failed to fetch quizzes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListQuizzesResponse{Quizzes: quizzes})
}

// ListQuestions handles GET /quizzes/:quizID/questions
func (h *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	quizID, err := strconv.ParseInt(chi.URLParam(r, "quizID"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "quiz_id must be an integer")
		return
	}

	questions, err := h.quizzes.Questions(r.Context(), quizID)
	if err != nil {
		slog.Error("failed to fetch questions", "error", err, "quiz_id", quizID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListQuestionsResponse{Questions: questions})
}
