package repositories_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaythakor/ai-interviewer/internal/models"
	"jaythakor/ai-interviewer/internal/repositories"
)

func newSession(id string) *models.InterviewSession {
	return &models.InterviewSession{
		ID:        id,
		Position:  "Backend Engineer",
		Keywords:  []string{"golang"},
		Questions: []string{"Q1", "Q2"},
		Answers:   []models.AnswerRecord{},
	}
}

func TestCreateAndFindByID(t *testing.T) {
	repo := repositories.NewMemorySessionRepository()

	require.NoError(t, repo.Create(newSession("s1")))

	found, err := repo.FindByID("s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", found.ID)
	assert.Equal(t, []string{"Q1", "Q2"}, found.Questions)
}

func TestCreate_RejectsDuplicateID(t *testing.T) {
	repo := repositories.NewMemorySessionRepository()

	require.NoError(t, repo.Create(newSession("s1")))
	assert.Error(t, repo.Create(newSession("s1")))
}

func TestFindByID_NotFound(t *testing.T) {
	repo := repositories.NewMemorySessionRepository()

	_, err := repo.FindByID("missing")

	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	repo := repositories.NewMemorySessionRepository()
	require.NoError(t, repo.Create(newSession("s1")))

	found, err := repo.FindByID("s1")
	require.NoError(t, err)

	// Mutating the returned session must not affect the stored one
	found.CurrentQuestionIndex = 99
	found.Questions[0] = "tampered"

	fresh, err := repo.FindByID("s1")
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.CurrentQuestionIndex)
	assert.Equal(t, "Q1", fresh.Questions[0])
}

func TestUpdate_AppliesMutation(t *testing.T) {
	repo := repositories.NewMemorySessionRepository()
	require.NoError(t, repo.Create(newSession("s1")))

	err := repo.Update("s1", func(s *models.InterviewSession) error {
		s.CurrentQuestionIndex = 1
		s.Answers = append(s.Answers, models.AnswerRecord{Question: "Q1", Answer: "A1"})
		return nil
	})
	require.NoError(t, err)

	found, err := repo.FindByID("s1")
	require.NoError(t, err)
	assert.Equal(t, 1, found.CurrentQuestionIndex)
	require.Len(t, found.Answers, 1)
	assert.Equal(t, "A1", found.Answers[0].Answer)
}

func TestUpdate_ErrorDiscardsMutation(t *testing.T) {
	repo := repositories.NewMemorySessionRepository()
	require.NoError(t, repo.Create(newSession("s1")))

	sentinel := errors.New("reject")
	err := repo.Update("s1", func(s *models.InterviewSession) error {
		s.CurrentQuestionIndex = 1
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	found, err := repo.FindByID("s1")
	require.NoError(t, err)
	assert.Equal(t, 0, found.CurrentQuestionIndex)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := repositories.NewMemorySessionRepository()

	err := repo.Update("missing", func(s *models.InterviewSession) error { return nil })

	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
}
