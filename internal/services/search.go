package services

import (
	"context"

	"github.com/sbilibin2017/qa-forum/internal/logger"
	"github.com/sbilibin2017/qa-forum/internal/models"
)

// QuestionSearcher defines the substring search over questions.
type QuestionSearcher interface {
	Search(ctx context.Context, substr string) ([]models.QuestionListItem, error)
}

// SearchService filters questions by a case-sensitive substring over title
// and body.
type SearchService struct {
	searcher QuestionSearcher
	tags     TagReader
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(searcher QuestionSearcher, tags TagReader) *SearchService {
	return &SearchService{searcher: searcher, tags: tags}
}

// Search returns the matching questions. An empty query returns an empty
// result without touching the store.
func (svc *SearchService) Search(ctx context.Context, query string) ([]models.QuestionListItem, error) {
	if query == "" {
		return []models.QuestionListItem{}, nil
	}

	questions, err := svc.searcher.Search(ctx, query)
	if err != nil {
		logger.Log.Errorw("search failed", "query", query, "err", err)
		return nil, err
	}

	ids := make([]int64, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	tags, err := svc.tags.ListByQuestionIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load question tags", "err", err)
		return nil, err
	}

	for i := range questions {
		questions[i].Tags = tags[questions[i].ID]
		if questions[i].Tags == nil {
			questions[i].Tags = []string{}
		}
	}

	return questions, nil
}
