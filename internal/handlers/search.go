package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/qa-forum/internal/logger"
	"github.com/sbilibin2017/qa-forum/internal/models"
)

// Searcher defines the interface that the search service must implement.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.QuestionListItem, error)
}

// NewSearchHandler returns an HTTP handler for question search. An empty
// query yields an empty result, not the full list.
// @Summary Search questions
// @Description Case-sensitive substring search over question titles and bodies
// @Tags questions
// @Produce json
// @Param q query string false "Substring to search for"
// @Success 200 {array} models.QuestionListItem "Matching questions"
// @Router /search [get]
func NewSearchHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		questions, err := svc.Search(r.Context(), query)
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
