package services

import (
	"context"
	"fmt"
	"strings"
)

// DefaultNumQuestions is used when a generate-questions request leaves the
// count unset.
const DefaultNumQuestions = 5

type QuestionGeneratorService interface {
	// Generate returns numQuestions interview questions for the position.
	Generate(ctx context.Context, position string, keywords []string, numQuestions int) ([]string, error)
	// GenerateOpening returns the initial 5-6 question set for a new
	// interview session.
	GenerateOpening(ctx context.Context, position string, keywords []string) ([]string, error)
}

type questionGeneratorService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewQuestionGeneratorService(gemini GeminiService) QuestionGeneratorService {
	return &questionGeneratorService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// Generate implements QuestionGeneratorService.
func (q *questionGeneratorService) Generate(ctx context.Context, position string, keywords []string, numQuestions int) ([]string, error) {
	if numQuestions <= 0 {
		numQuestions = DefaultNumQuestions
	}

	prompt := q.promptBuilder.BuildQuestionsPrompt(position, keywords, numQuestions)

	response, err := q.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	return splitQuestions(response), nil
}

// GenerateOpening implements QuestionGeneratorService.
func (q *questionGeneratorService) GenerateOpening(ctx context.Context, position string, keywords []string) ([]string, error) {
	prompt := q.promptBuilder.BuildInterviewOpeningPrompt(position, keywords)

	response, err := q.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("failed to generate opening questions: %w", err)
	}

	return splitQuestions(response), nil
}

// splitQuestions turns the model's free-text response into one question per
// line. Blank lines are dropped; nothing else is validated, the contract is
// best effort.
func splitQuestions(response string) []string {
	lines := strings.Split(response, "\n")

	questions := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			questions = append(questions, line)
		}
	}

	return questions
}
