package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/qa-forum/internal/models"
	"github.com/sbilibin2017/qa-forum/internal/services"
	"github.com/stretchr/testify/assert"
)

type contentMocks struct {
	users     *services.MockUserReader
	questions *services.MockQuestionReader
	qWriter   *services.MockQuestionWriter
	tags      *services.MockTagReader
	tagWriter *services.MockTagWriter
	answers   *services.MockAnswerReader
	aWriter   *services.MockAnswerWriter
	comments  *services.MockCommentReader
	cWriter   *services.MockCommentWriter
	events    *services.MockEventWriter
}

func newContentService(ctrl *gomock.Controller, withEvents bool) (*services.ContentService, contentMocks) {
	m := contentMocks{
		users:     services.NewMockUserReader(ctrl),
		questions: services.NewMockQuestionReader(ctrl),
		qWriter:   services.NewMockQuestionWriter(ctrl),
		tags:      services.NewMockTagReader(ctrl),
		tagWriter: services.NewMockTagWriter(ctrl),
		answers:   services.NewMockAnswerReader(ctrl),
		aWriter:   services.NewMockAnswerWriter(ctrl),
		comments:  services.NewMockCommentReader(ctrl),
		cWriter:   services.NewMockCommentWriter(ctrl),
		events:    services.NewMockEventWriter(ctrl),
	}

	var events services.EventWriter
	if withEvents {
		events = m.events
	}

	svc := services.NewContentService(
		m.users, m.questions, m.qWriter,
		m.tags, m.tagWriter,
		m.answers, m.aWriter,
		m.comments, m.cWriter,
		events,
	)
	return svc, m
}

func TestContentService_ListQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newContentService(ctrl, false)

	questions := []models.QuestionListItem{
		{QuestionDB: models.QuestionDB{ID: 2, Title: "newer"}, Author: "bob"},
		{QuestionDB: models.QuestionDB{ID: 1, Title: "older"}, Author: "alice"},
	}

	m.questions.EXPECT().
		List(gomock.Any()).
		Return(questions, nil)
	m.tags.EXPECT().
		ListByQuestionIDs(gomock.Any(), []int64{2, 1}).
		Return(map[int64][]string{1: {"go", "sql"}}, nil)

	got, err := svc.ListQuestions(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{}, got[0].Tags)
	assert.Equal(t, []string{"go", "sql"}, got[1].Tags)
}

func TestContentService_ListQuestionsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newContentService(ctrl, false)

	t.Run("list error", func(t *testing.T) {
		m.questions.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.ListQuestions(context.Background())
		assert.EqualError(t, err, "db error")
	})

	t.Run("tags error", func(t *testing.T) {
		m.questions.EXPECT().
			List(gomock.Any()).
			Return([]models.QuestionListItem{{QuestionDB: models.QuestionDB{ID: 1}}}, nil)
		m.tags.EXPECT().
			ListByQuestionIDs(gomock.Any(), []int64{1}).
			Return(nil, errors.New("db error"))

		_, err := svc.ListQuestions(context.Background())
		assert.EqualError(t, err, "db error")
	})
}

func TestContentService_CreateQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newContentService(ctrl, false)

	t.Run("successful creation with tags", func(t *testing.T) {
		m.qWriter.EXPECT().
			Save(gomock.Any(), "How to join?", "body", int64(1)).
			Return(int64(10), nil)
		m.tagWriter.EXPECT().
			GetOrCreate(gomock.Any(), "go").
			Return(int64(100), nil)
		m.qWriter.EXPECT().
			AttachTag(gomock.Any(), int64(10), int64(100)).
			Return(nil)
		m.tagWriter.EXPECT().
			GetOrCreate(gomock.Any(), "sql").
			Return(int64(101), nil)
		m.qWriter.EXPECT().
			AttachTag(gomock.Any(), int64(10), int64(101)).
			Return(nil)

		id, err := svc.CreateQuestion(context.Background(), 1, "How to join?", "body", []string{" go ", "", "sql", "go"})
		assert.NoError(t, err)
		assert.Equal(t, int64(10), id)
	})

	t.Run("anonymous author", func(t *testing.T) {
		_, err := svc.CreateQuestion(context.Background(), 0, "title", "body", nil)
		assert.ErrorIs(t, err, services.ErrAuthenticationRequired)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := svc.CreateQuestion(context.Background(), 1, "   ", "body", nil)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("blank body", func(t *testing.T) {
		_, err := svc.CreateQuestion(context.Background(), 1, "title", "", nil)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("save error", func(t *testing.T) {
		m.qWriter.EXPECT().
			Save(gomock.Any(), "title", "body", int64(1)).
			Return(int64(0), errors.New("db error"))

		_, err := svc.CreateQuestion(context.Background(), 1, "title", "body", nil)
		assert.EqualError(t, err, "db error")
	})

	t.Run("tag upsert error", func(t *testing.T) {
		m.qWriter.EXPECT().
			Save(gomock.Any(), "title", "body", int64(1)).
			Return(int64(10), nil)
		m.tagWriter.EXPECT().
			GetOrCreate(gomock.Any(), "go").
			Return(int64(0), errors.New("db error"))

		_, err := svc.CreateQuestion(context.Background(), 1, "title", "body", []string{"go"})
		assert.EqualError(t, err, "db error")
	})
}

func TestContentService_CreateQuestionPublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newContentService(ctrl, true)

	m.qWriter.EXPECT().
		Save(gomock.Any(), "title", "body", int64(1)).
		Return(int64(10), nil)
	m.events.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(nil)

	id, err := svc.CreateQuestion(context.Background(), 1, "title", "body", nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), id)
}

func TestContentService_CreateQuestionEventFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newContentService(ctrl, true)

	m.qWriter.EXPECT().
		Save(gomock.Any(), "title", "body", int64(1)).
		Return(int64(10), nil)
	m.events.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	id, err := svc.CreateQuestion(context.Background(), 1, "title", "body", nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), id)
}

func TestContentService_GetQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newContentService(ctrl, false)

	t.Run("not found", func(t *testing.T) {
		m.questions.EXPECT().
			GetByID(gomock.Any(), int64(99)).
			Return(nil, nil)

		_, err := svc.GetQuestion(context.Background(), 99)
		assert.ErrorIs(t, err, services.ErrQuestionNotFound)
	})

	t.Run("full detail", func(t *testing.T) {
		m.questions.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(&models.QuestionDB{ID: 1, Title: "q", UserID: 7}, nil)
		m.users.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(&models.UserDB{ID: 7, Username: "alice"}, nil)
		m.tags.EXPECT().
			ListByQuestionID(gomock.Any(), int64(1)).
			Return([]string{"go"}, nil)
		m.answers.EXPECT().
			ListByQuestionID(gomock.Any(), int64(1)).
			Return([]models.AnswerDB{{ID: 5, QuestionID: 1}, {ID: 6, QuestionID: 1}}, nil)
		m.comments.EXPECT().
			ListByAnswerIDs(gomock.Any(), []int64{5, 6}).
			Return(map[int64][]models.CommentDB{5: {{ID: 50}}}, nil)
		m.comments.EXPECT().
			ListByQuestionID(gomock.Any(), int64(1)).
			Return([]models.CommentDB{{ID: 40}}, nil)

		detail, err := svc.GetQuestion(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "alice", detail.Author)
		assert.Equal(t, []string{"go"}, detail.Tags)
		assert.Len(t, detail.Answers, 2)
		assert.Len(t, detail.Answers[0].Comments, 1)
		assert.Equal(t, []models.CommentDB{}, detail.Answers[1].Comments)
		assert.Len(t, detail.Comments, 1)
	})

	t.Run("question without tags or comments", func(t *testing.T) {
		m.questions.EXPECT().
			GetByID(gomock.Any(), int64(2)).
			Return(&models.QuestionDB{ID: 2, UserID: 7}, nil)
		m.users.EXPECT().
			GetByID(gomock.Any(), int64(7)).
			Return(&models.UserDB{ID: 7, Username: "alice"}, nil)
		m.tags.EXPECT().
			ListByQuestionID(gomock.Any(), int64(2)).
			Return(nil, nil)
		m.answers.EXPECT().
			ListByQuestionID(gomock.Any(), int64(2)).
			Return(nil, nil)
		m.comments.EXPECT().
			ListByAnswerIDs(gomock.Any(), []int64{}).
			Return(map[int64][]models.CommentDB{}, nil)
		m.comments.EXPECT().
			ListByQuestionID(gomock.Any(), int64(2)).
			Return(nil, nil)

		detail, err := svc.GetQuestion(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, []string{}, detail.Tags)
		assert.Equal(t, []models.AnswerWithComments{}, detail.Answers)
		assert.Equal(t, []models.CommentDB{}, detail.Comments)
	})

	t.Run("read error", func(t *testing.T) {
		m.questions.EXPECT().
			GetByID(gomock.Any(), int64(3)).
			Return(nil, errors.New("db error"))

		_, err := svc.GetQuestion(context.Background(), 3)
		assert.EqualError(t, err, "db error")
	})
}

func TestContentService_CreateAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newContentService(ctrl, false)

	t.Run("successful creation", func(t *testing.T) {
		m.questions.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(&models.QuestionDB{ID: 1}, nil)
		m.aWriter.EXPECT().
			Save(gomock.Any(), int64(1), int64(2), "an answer").
			Return(int64(5), nil)

		id, err := svc.CreateAnswer(context.Background(), 2, 1, "an answer")
		assert.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("anonymous author", func(t *testing.T) {
		_, err := svc.CreateAnswer(context.Background(), 0, 1, "an answer")
		assert.ErrorIs(t, err, services.ErrAuthenticationRequired)
	})

	t.Run("blank body", func(t *testing.T) {
		_, err := svc.CreateAnswer(context.Background(), 2, 1, "  ")
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("question does not exist", func(t *testing.T) {
		m.questions.EXPECT().
			GetByID(gomock.Any(), int64(99)).
			Return(nil, nil)

		_, err := svc.CreateAnswer(context.Background(), 2, 99, "an answer")
		assert.ErrorIs(t, err, services.ErrQuestionNotFound)
	})

	t.Run("save error", func(t *testing.T) {
		m.questions.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(&models.QuestionDB{ID: 1}, nil)
		m.aWriter.EXPECT().
			Save(gomock.Any(), int64(1), int64(2), "an answer").
			Return(int64(0), errors.New("db error"))

		_, err := svc.CreateAnswer(context.Background(), 2, 1, "an answer")
		assert.EqualError(t, err, "db error")
	})
}

func TestContentService_CreateComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newContentService(ctrl, false)

	questionID := int64(1)
	answerID := int64(5)

	t.Run("comment on a question", func(t *testing.T) {
		m.questions.EXPECT().
			GetByID(gomock.Any(), questionID).
			Return(&models.QuestionDB{ID: questionID}, nil)
		m.cWriter.EXPECT().
			Save(gomock.Any(), "nice", int64(2), &questionID, (*int64)(nil)).
			Return(int64(40), nil)

		id, err := svc.CreateComment(context.Background(), 2, "nice", &questionID, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(40), id)
	})

	t.Run("comment on an answer", func(t *testing.T) {
		m.answers.EXPECT().
			GetByID(gomock.Any(), answerID).
			Return(&models.AnswerDB{ID: answerID, QuestionID: questionID}, nil)
		m.cWriter.EXPECT().
			Save(gomock.Any(), "nice", int64(2), (*int64)(nil), &answerID).
			Return(int64(41), nil)

		id, err := svc.CreateComment(context.Background(), 2, "nice", nil, &answerID)
		assert.NoError(t, err)
		assert.Equal(t, int64(41), id)
	})

	t.Run("anonymous author", func(t *testing.T) {
		_, err := svc.CreateComment(context.Background(), 0, "nice", &questionID, nil)
		assert.ErrorIs(t, err, services.ErrAuthenticationRequired)
	})

	t.Run("no target", func(t *testing.T) {
		_, err := svc.CreateComment(context.Background(), 2, "nice", nil, nil)
		assert.ErrorIs(t, err, services.ErrInvalidCommentTarget)
	})

	t.Run("both targets", func(t *testing.T) {
		_, err := svc.CreateComment(context.Background(), 2, "nice", &questionID, &answerID)
		assert.ErrorIs(t, err, services.ErrInvalidCommentTarget)
	})

	t.Run("blank body", func(t *testing.T) {
		_, err := svc.CreateComment(context.Background(), 2, "   ", &questionID, nil)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("body over the length limit", func(t *testing.T) {
		long := strings.Repeat("x", 501)
		_, err := svc.CreateComment(context.Background(), 2, long, &questionID, nil)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("body at the length limit", func(t *testing.T) {
		body := strings.Repeat("x", 500)
		m.questions.EXPECT().
			GetByID(gomock.Any(), questionID).
			Return(&models.QuestionDB{ID: questionID}, nil)
		m.cWriter.EXPECT().
			Save(gomock.Any(), body, int64(2), &questionID, (*int64)(nil)).
			Return(int64(42), nil)

		_, err := svc.CreateComment(context.Background(), 2, body, &questionID, nil)
		assert.NoError(t, err)
	})

	t.Run("question target does not exist", func(t *testing.T) {
		missing := int64(99)
		m.questions.EXPECT().
			GetByID(gomock.Any(), missing).
			Return(nil, nil)

		_, err := svc.CreateComment(context.Background(), 2, "nice", &missing, nil)
		assert.ErrorIs(t, err, services.ErrQuestionNotFound)
	})

	t.Run("answer target does not exist", func(t *testing.T) {
		missing := int64(99)
		m.answers.EXPECT().
			GetByID(gomock.Any(), missing).
			Return(nil, nil)

		_, err := svc.CreateComment(context.Background(), 2, "nice", nil, &missing)
		assert.ErrorIs(t, err, services.ErrAnswerNotFound)
	})
}
