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
	"github.com/sbilibin2017/qa-forum/internal/models"
	"github.com/sbilibin2017/qa-forum/internal/services"
)

// QuestionGetter defines the interface that the content service must
// implement for the question detail view.
type QuestionGetter interface {
	GetQuestion(ctx context.Context, id int64) (*models.QuestionDetail, error)
}

// AnswerCreator defines the interface that the content service must
// implement for posting answers.
type AnswerCreator interface {
	CreateAnswer(ctx context.Context, authorID, questionID int64, body string) (int64, error)
}

// AnswerRequest represents the JSON body for posting an answer
// swagger:model AnswerRequest
type AnswerRequest struct {
	// Answer body
	// required: true
	// default: Use W instead.
	Body string `json:"body"`
}

// questionIDParam parses the {id} route parameter.
func questionIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// NewGetQuestionHandler returns an HTTP handler for the question detail view.
// @Summary Get a question
// @Description Returns the question with its tags, answers and comments
// @Tags questions
// @Produce json
// @Param id path int true "Question id"
// @Success 200 {object} models.QuestionDetail "Question detail"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Router /question/{id} [get]
func NewGetQuestionHandler(svc QuestionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := questionIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Question not found",
			})
			return
		}

		detail, err := svc.GetQuestion(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuestionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Question not found",
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}

// NewCreateAnswerHandler returns an HTTP handler for posting an answer to a
// question.
// @Summary Answer a question
// @Description Appends an answer to an existing question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question id"
// @Param answerRequest body handlers.AnswerRequest true "Answer to post"
// @Success 201 {object} handlers.CreatedResponse "Answer created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Router /question/{id} [post]
func NewCreateAnswerHandler(svc AnswerCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questionID, err := questionIDParam(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Question not found",
			})
			return
		}

		var req AnswerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		authorID := middlewares.UserIDFromContext(r.Context())

		id, err := svc.CreateAnswer(r.Context(), authorID, questionID, req.Body)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAuthenticationRequired):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Authentication required",
				})
			case errors.Is(err, services.ErrQuestionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Question not found",
				})
			case errors.Is(err, services.ErrInvalidInput):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Answer body must not be empty",
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
