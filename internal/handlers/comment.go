package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/qa-forum/internal/logger"
	"github.com/sbilibin2017/qa-forum/internal/middlewares"
	"github.com/sbilibin2017/qa-forum/internal/services"
)

// CommentCreator defines the interface that the content service must
// implement for posting comments.
type CommentCreator interface {
	CreateComment(ctx context.Context, authorID int64, body string, questionID, answerID *int64) (int64, error)
}

// CommentRequest represents the JSON body for posting a comment
// swagger:model CommentRequest
type CommentRequest struct {
	// Comment body, at most 500 characters
	// required: true
	// default: Could you share the error message?
	Body string `json:"body"`
}

// NewQuestionCommentHandler returns an HTTP handler for commenting on a
// question.
// @Summary Comment on a question
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Question id"
// @Param commentRequest body handlers.CommentRequest true "Comment to post"
// @Success 201 {object} handlers.CreatedResponse "Comment created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Router /question/{id}/comment [post]
func NewQuestionCommentHandler(svc CommentCreator) http.HandlerFunc {
	return commentHandler(svc, "Question not found", func(targetID int64) (questionID, answerID *int64) {
		return &targetID, nil
	})
}

// NewAnswerCommentHandler returns an HTTP handler for commenting on an
// answer.
// @Summary Comment on an answer
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Answer id"
// @Param commentRequest body handlers.CommentRequest true "Comment to post"
// @Success 201 {object} handlers.CreatedResponse "Comment created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 404 {object} handlers.ErrorResponse "Answer not found"
// @Router /answer/{id}/comment [post]
func NewAnswerCommentHandler(svc CommentCreator) http.HandlerFunc {
	return commentHandler(svc, "Answer not found", func(targetID int64) (questionID, answerID *int64) {
		return nil, &targetID
	})
}

func commentHandler(svc CommentCreator, notFoundMsg string, target func(int64) (*int64, *int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: notFoundMsg,
			})
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		authorID := middlewares.UserIDFromContext(r.Context())
		questionID, answerID := target(targetID)

		id, err := svc.CreateComment(r.Context(), authorID, req.Body, questionID, answerID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAuthenticationRequired):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Authentication required",
				})
			case errors.Is(err, services.ErrQuestionNotFound),
				errors.Is(err, services.ErrAnswerNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: notFoundMsg,
				})
			case errors.Is(err, services.ErrInvalidInput),
				errors.Is(err, services.ErrInvalidCommentTarget):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Comment body must be 1-500 characters",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreatedResponse{ID: id})
	}
}
