package services_test

import (
	"context"

	"google.golang.org/genai"
)

// fakeGemini returns canned responses so services can be tested without the
// real API.
type fakeGemini struct {
	textResponse string
	jsonResponse string
	err          error

	lastPrompt string
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.textResponse, nil
}

func (f *fakeGemini) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema, temperature float32) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.jsonResponse, nil
}
