package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/qa-forum/internal/logger"
	"github.com/sbilibin2017/qa-forum/internal/models"
)

// QuestionLister defines the interface that the content service must
// implement for the index page.
type QuestionLister interface {
	ListQuestions(ctx context.Context) ([]models.QuestionListItem, error)
}

// NewListQuestionsHandler returns an HTTP handler listing all questions,
// newest first.
// @Summary List questions
// @Description Returns every question with author and tags, ordered by creation time descending
// @Tags questions
// @Produce json
// @Success 200 {array} models.QuestionListItem "All questions"
// @Router / [get]
func NewListQuestionsHandler(svc QuestionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questions, err := svc.ListQuestions(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if questions == nil {
			questions = []models.QuestionListItem{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(questions)
	}
}
