package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/qa-forum/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("matching questions", func(t *testing.T) {
		mockSvc := NewMockSearcher(ctrl)
		mockSvc.EXPECT().
			Search(gomock.Any(), "join").
			Return([]models.QuestionListItem{
				{QuestionDB: models.QuestionDB{ID: 1, Title: "How to join?"}, Author: "alice", Tags: []string{"sql"}},
			}, nil)

		handler := NewSearchHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/search?q=join", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []models.QuestionListItem
		err := json.Unmarshal(rec.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "How to join?", got[0].Title)
	})

	t.Run("missing query parameter", func(t *testing.T) {
		mockSvc := NewMockSearcher(ctrl)
		mockSvc.EXPECT().
			Search(gomock.Any(), "").
			Return([]models.QuestionListItem{}, nil)

		handler := NewSearchHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("no matches returns empty array", func(t *testing.T) {
		mockSvc := NewMockSearcher(ctrl)
		mockSvc.EXPECT().
			Search(gomock.Any(), "nothing").
			Return(nil, nil)

		handler := NewSearchHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/search?q=nothing", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockSearcher(ctrl)
		mockSvc.EXPECT().
			Search(gomock.Any(), "join").
			Return(nil, errors.New("db error"))

		handler := NewSearchHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/search?q=join", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
