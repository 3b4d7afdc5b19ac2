package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaythakor/ai-interviewer/internal/services"
)

func TestGenerate_SplitsResponseIntoLines(t *testing.T) {
	gemini := &fakeGemini{
		textResponse: "1. What is a goroutine?\n\n2. Explain channels.\n   \n3. Design a rate limiter.\n",
	}
	generator := services.NewQuestionGeneratorService(gemini)

	questions, err := generator.Generate(context.Background(), "Backend Engineer", []string{"golang", "concurrency"}, 3)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"1. What is a goroutine?",
		"2. Explain channels.",
		"3. Design a rate limiter.",
	}, questions)
}

func TestGenerate_PromptCarriesPositionAndKeywords(t *testing.T) {
	gemini := &fakeGemini{textResponse: "1. Question"}
	generator := services.NewQuestionGeneratorService(gemini)

	_, err := generator.Generate(context.Background(), "Site Reliability Engineer", []string{"kubernetes", "terraform"}, 4)

	require.NoError(t, err)
	assert.Contains(t, gemini.lastPrompt, "Site Reliability Engineer")
	assert.Contains(t, gemini.lastPrompt, "kubernetes, terraform")
	assert.Contains(t, gemini.lastPrompt, "exactly 4")
}

func TestGenerate_DefaultsQuestionCount(t *testing.T) {
	gemini := &fakeGemini{textResponse: "1. Question"}
	generator := services.NewQuestionGeneratorService(gemini)

	_, err := generator.Generate(context.Background(), "Backend Engineer", []string{"golang"}, 0)

	require.NoError(t, err)
	assert.Contains(t, gemini.lastPrompt, "exactly 5")
}

func TestGenerate_PropagatesUpstreamError(t *testing.T) {
	gemini := &fakeGemini{err: errors.New("api unreachable")}
	generator := services.NewQuestionGeneratorService(gemini)

	questions, err := generator.Generate(context.Background(), "Backend Engineer", []string{"golang"}, 5)

	assert.Error(t, err)
	assert.Nil(t, questions)
}

func TestGenerateOpening_UsesInterviewVariant(t *testing.T) {
	gemini := &fakeGemini{textResponse: "1. One\n2. Two"}
	generator := services.NewQuestionGeneratorService(gemini)

	questions, err := generator.GenerateOpening(context.Background(), "Backend Engineer", []string{"golang"})

	require.NoError(t, err)
	assert.Len(t, questions, 2)
	assert.Contains(t, gemini.lastPrompt, "5-6")
}
