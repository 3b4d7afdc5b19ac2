package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"jaythakor/ai-interviewer/internal/models"
	"jaythakor/ai-interviewer/internal/repositories"
)

var (
	ErrPositionRequired  = errors.New("position is required")
	ErrKeywordsRequired  = errors.New("keywords are required")
	ErrAnswerRequired    = errors.New("answer is required")
	ErrNoCurrentQuestion = errors.New("no current question")
	ErrInterviewComplete = errors.New("interview already complete")
)

// SubmitResult is what an evaluate-answer call hands back to the HTTP layer:
// the evaluation itself plus either the next question or, once the last
// question is answered, the full answer history.
type SubmitResult struct {
	Evaluation   models.Evaluation
	IsComplete   bool
	NextQuestion string
	Summary      []models.AnswerRecord
}

type InterviewService interface {
	Start(ctx context.Context, position string, keywords []string) (*models.InterviewSession, error)
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*SubmitResult, error)
}

type interviewService struct {
	sessions  repositories.SessionRepository
	generator QuestionGeneratorService
	evaluator AnswerEvaluatorService
}

func NewInterviewService(
	sessions repositories.SessionRepository,
	generator QuestionGeneratorService,
	evaluator AnswerEvaluatorService,
) InterviewService {
	return &interviewService{
		sessions:  sessions,
		generator: generator,
		evaluator: evaluator,
	}
}

// Start implements InterviewService. It generates the opening question set,
// stores a fresh session, and returns it with the index at the first question.
func (s *interviewService) Start(ctx context.Context, position string, keywords []string) (*models.InterviewSession, error) {
	if position == "" {
		return nil, ErrPositionRequired
	}
	if len(keywords) == 0 {
		return nil, ErrKeywordsRequired
	}

	questions, err := s.generator.GenerateOpening(ctx, position, keywords)
	if err != nil {
		return nil, fmt.Errorf("failed to generate interview questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("question generator returned no questions")
	}

	session := &models.InterviewSession{
		ID:                   uuid.NewString(),
		Position:             position,
		Keywords:             keywords,
		Questions:            questions,
		CurrentQuestionIndex: 0,
		Answers:              []models.AnswerRecord{},
		CreatedAt:            time.Now(),
	}

	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	log.Printf("🎤 Interview %s started for %q with %d questions", session.ID, position, len(questions))
	return session, nil
}

// SubmitAnswer implements InterviewService. The evaluation runs outside the
// store lock because it is a slow network call; the state transition itself
// is applied atomically, with the guards re-checked under the lock.
func (s *interviewService) SubmitAnswer(ctx context.Context, sessionID, answer string) (*SubmitResult, error) {
	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	if session.IsComplete() {
		return nil, ErrInterviewComplete
	}
	if answer == "" {
		return nil, ErrAnswerRequired
	}

	question, ok := session.CurrentQuestion()
	if !ok {
		return nil, ErrNoCurrentQuestion
	}

	evaluation := s.evaluator.Evaluate(ctx, question, answer)

	var result SubmitResult
	err = s.sessions.Update(sessionID, func(session *models.InterviewSession) error {
		if session.IsComplete() {
			return ErrInterviewComplete
		}
		if _, ok := session.CurrentQuestion(); !ok {
			return ErrNoCurrentQuestion
		}

		session.Answers = append(session.Answers, models.AnswerRecord{
			Question:   question,
			Answer:     answer,
			Evaluation: evaluation,
		})

		result.Evaluation = evaluation

		if session.CurrentQuestionIndex < len(session.Questions)-1 {
			session.CurrentQuestionIndex++
			result.NextQuestion = session.Questions[session.CurrentQuestionIndex]
			return nil
		}

		result.IsComplete = true
		result.Summary = append([]models.AnswerRecord(nil), session.Answers...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
