package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"jaythakor/ai-interviewer/internal/models"
)

type AnswerEvaluatorService interface {
	// Evaluate never fails: any upstream error is swallowed and the fixed
	// default evaluation is returned instead, so a flaky LLM cannot break
	// an interview in progress. Failures are still logged.
	Evaluate(ctx context.Context, question, answer string) models.Evaluation
}

type answerEvaluatorService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewAnswerEvaluatorService(gemini GeminiService) AnswerEvaluatorService {
	return &answerEvaluatorService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// DefaultEvaluation is the canned verdict substituted whenever the LLM round
// trip fails. Availability over correctness: the interview keeps moving.
func DefaultEvaluation() models.Evaluation {
	return models.Evaluation{
		Score:    2,
		Rating:   models.RatingFair,
		Feedback: "The answer showed basic understanding but needs improvement",
		FollowUp: "Can you explain this concept in more detail?",
	}
}

// Evaluate implements AnswerEvaluatorService.
func (e *answerEvaluatorService) Evaluate(ctx context.Context, question, answer string) models.Evaluation {
	evaluation, err := e.evaluate(ctx, question, answer)
	if err != nil {
		log.Printf("⚠️  Answer evaluation failed, using default: %v", err)
		return DefaultEvaluation()
	}

	return evaluation
}

func (e *answerEvaluatorService) evaluate(ctx context.Context, question, answer string) (models.Evaluation, error) {
	prompt := e.promptBuilder.BuildEvaluationPrompt(question, answer)

	response, err := e.gemini.GenerateJSON(ctx, prompt, evaluationSchema(), 0.3)
	if err != nil {
		return models.Evaluation{}, fmt.Errorf("failed to generate evaluation: %w", err)
	}

	var evaluation models.Evaluation
	if err := json.Unmarshal([]byte(extractJSON(response)), &evaluation); err != nil {
		return models.Evaluation{}, fmt.Errorf("failed to parse evaluation response: %w", err)
	}

	if err := evaluation.Validate(); err != nil {
		return models.Evaluation{}, fmt.Errorf("evaluation failed schema validation: %w", err)
	}

	return evaluation, nil
}

// evaluationSchema constrains structured output to the Evaluation shape.
func evaluationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"score": {
				Type:        genai.TypeInteger,
				Description: "Answer quality from 1 (poor) to 4 (excellent)",
			},
			"rating": {
				Type: genai.TypeString,
				Enum: []string{
					models.RatingPoor,
					models.RatingFair,
					models.RatingGood,
					models.RatingExcellent,
				},
			},
			"feedback": {Type: genai.TypeString},
			"followUp": {Type: genai.TypeString},
		},
		Required: []string{"score", "rating", "feedback", "followUp"},
	}
}

// extractJSON tries to extract JSON from text that might contain markdown or
// other formatting around the object.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
