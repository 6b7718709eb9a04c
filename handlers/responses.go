// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-responses/middleware"
	"github.com/danielhkuo/quiz-responses/models"
	"github.com/danielhkuo/quiz-responses/submission"
)

type ResponseHandler struct {
	transactor *submission.Transactor
}

func NewResponseHandler(db *sql.DB) *ResponseHandler {
	return &ResponseHandler{transactor: submission.NewTransactor(db)}
}

// Submit handles POST /responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := middleware.ReadBody(w, r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	sub, err := submission.Parse(body)
	if err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.transactor.Submit(r.Context(), sub)
	if err != nil {
		h.writeError(w, err)
		return
	}

	slog.Info("responses stored", "quiz_id", sub.QuizID, "count", result.Count)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponsesResponse{
		Inserted: result.Inserted,
		Count:    result.Count,
	})
}

func (h *ResponseHandler) writeError(w http.ResponseWriter, err error) {
	var verr *submission.ValidationError
	var perr *submission.PersistenceError

	switch {
	case errors.As(err, &verr):
		slog.Info("rejected submission", "field", verr.Field, "reason", verr.Message)
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
	case errors.As(err, &perr):
		slog.Error("failed to insert responses", "error", perr.Cause)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   perr.Error(),
			Payload: perr.Payload,
		})
	default:
		slog.Error("failed to insert responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
