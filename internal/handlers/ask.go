package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/qa-forum/internal/logger"
	"github.com/sbilibin2017/qa-forum/internal/middlewares"
	"github.com/sbilibin2017/qa-forum/internal/services"
)

// QuestionCreator defines the interface that the content service must
// implement for asking questions.
type QuestionCreator interface {
	CreateQuestion(ctx context.Context, authorID int64, title, body string, tagNames []string) (int64, error)
}

// AskRequest represents the JSON body for creating a question
// swagger:model AskRequest
type AskRequest struct {
	// Question title
	// required: true
	// default: How do I X?
	Title string `json:"title"`

	// Question body
	// required: true
	// default: I tried Y and it did Z.
	Body string `json:"body"`

	// Comma-separated tag names
	// default: go,postgres
	Tags string `json:"tags"`
}

// CreatedResponse represents the id of a newly created entity
// swagger:model CreatedResponse
type CreatedResponse struct {
	// New entity id
	// default: 1
	ID int64 `json:"id"`
}

// NewAskHandler returns an HTTP handler for creating a question with tags.
// @Summary Ask a question
// @Description Creates a question, reusing existing tags by exact name and creating missing ones
// @Tags questions
// @Accept json
// @Produce json
// @Param askRequest body handlers.AskRequest true "Question to create"
// @Success 201 {object} handlers.CreatedResponse "Question created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /ask [post]
func NewAskHandler(svc QuestionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AskRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		authorID := middlewares.UserIDFromContext(r.Context())

		id, err := svc.CreateQuestion(r.Context(), authorID, req.Title, req.Body, strings.Split(req.Tags, ","))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAuthenticationRequired):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Authentication required",
				})
			case errors.Is(err, services.ErrInvalidInput):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Title and body must not be empty",
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
