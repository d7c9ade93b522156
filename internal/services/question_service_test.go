package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorkays/internal/models"
)

type fakeQuestionRepo struct {
	byID   map[int]*models.Question
	nextID int
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{byID: map[int]*models.Question{}, nextID: 1}
}

func (f *fakeQuestionRepo) Create(q *models.Question) error {
	q.ID = f.nextID
	f.nextID++
	q.CreatedAt = time.Now()
	if q.Comments == nil {
		q.Comments = []models.Comment{}
	}
	f.byID[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) GetByID(id int) (*models.Question, error) {
	q, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return q, nil
}

func (f *fakeQuestionRepo) List() ([]*models.Question, error) {
	var res []*models.Question
	for _, q := range f.byID {
		res = append(res, q)
	}
	return res, nil
}

func (f *fakeQuestionRepo) UpdateAnswer(id int, answer string) error {
	q, ok := f.byID[id]
	if !ok {
		return sql.ErrNoRows
	}
	q.Answer = answer
	q.HasDoctorReplied = true
	return nil
}

func (f *fakeQuestionRepo) AddComment(c *models.Comment) error {
	q, ok := f.byID[c.QuestionID]
	if !ok {
		return sql.ErrNoRows
	}
	c.ID = len(q.Comments) + 1
	c.CreatedAt = time.Now()
	q.Comments = append(q.Comments, *c)
	return nil
}

func (f *fakeQuestionRepo) AddReaction(id int, likeDelta, dislikeDelta int) error {
	q, ok := f.byID[id]
	if !ok {
		return sql.ErrNoRows
	}
	q.Likes += likeDelta
	q.Dislikes += dislikeDelta
	return nil
}

func (f *fakeQuestionRepo) Count() (int, error) { return len(f.byID), nil }

func seedQuestion(t *testing.T, svc QuestionService) *models.Question {
	t.Helper()
	q := &models.Question{User: "pat", Title: "Headaches", Question: "Why do I get headaches at night?"}
	require.NoError(t, svc.Create(q))
	return q
}

func TestQuestionAnswer(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	q := seedQuestion(t, svc)

	answered, err := svc.Answer(q.ID, "Often dehydration; see a doctor if persistent.")
	require.NoError(t, err)
	assert.True(t, answered.HasDoctorReplied)
	assert.NotEmpty(t, answered.Answer)

	_, err = svc.Answer(999, "no one asked")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionAddComment(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	q := seedQuestion(t, svc)

	updated, err := svc.AddComment(q.ID, "sam", "Same here")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, "sam", updated.Comments[0].User)

	_, err = svc.AddComment(999, "sam", "ghost thread")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionReact(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	q := seedQuestion(t, svc)

	updated, err := svc.React(q.ID, "like")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)

	updated, err = svc.React(q.ID, "dislike")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Dislikes)
	assert.Equal(t, 1, updated.Likes)

	_, err = svc.React(q.ID, "meh")
	assert.ErrorIs(t, err, ErrBadReaction)

	_, err = svc.React(999, "like")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
