package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionsPrompt creates the prompt for the standalone question
// generation endpoint, which asks for an exact number of questions.
func (pb *PromptBuilder) BuildQuestionsPrompt(position string, keywords []string, numQuestions int) string {
	return fmt.Sprintf(`You are an expert technical interviewer preparing questions for a %s position.

The candidate's résumé highlights these skills: %s

Generate exactly %d technical interview questions tailored to this role and skill set.

Requirements:
- Return a numbered list, one question per line.
- Progress from easy to hard.
- Include at least one system design question.
- Plain text only, no markdown or other markup.

Generate the questions now.`,
		position, strings.Join(keywords, ", "), numQuestions)
}

// BuildInterviewOpeningPrompt creates the prompt used when an interview
// session starts. It asks for a short 5-6 question set rather than an exact
// count.
func (pb *PromptBuilder) BuildInterviewOpeningPrompt(position string, keywords []string) string {
	return fmt.Sprintf(`You are an expert technical interviewer conducting a live interview for a %s position.

The candidate's résumé highlights these skills: %s

Generate 5-6 technical interview questions for this candidate.

Requirements:
- Return a numbered list, one question per line.
- Progress from easy to hard.
- Include at least one system design question.
- Plain text only, no markdown or other markup.

Generate the questions now.`,
		position, strings.Join(keywords, ", "))
}

// BuildEvaluationPrompt creates the prompt for scoring a candidate's answer.
// The JSON shape is spelled out in the prompt as well as enforced through
// structured output, since smaller models follow explicit instructions better.
func (pb *PromptBuilder) BuildEvaluationPrompt(question, answer string) string {
	return fmt.Sprintf(`You are an expert technical interviewer evaluating a candidate's answer.

QUESTION:
%s

CANDIDATE'S ANSWER:
%s

Score the answer and return your response in the following JSON format:
{
  "score": <integer 1-4, where 1 is poor and 4 is excellent>,
  "rating": "<one of: Poor, Fair, Good, Excellent>",
  "feedback": "<2-3 sentences of specific feedback on the answer>",
  "followUp": "<one follow-up question probing deeper into the same topic>"
}

Be objective. Judge technical accuracy, depth, and clarity.`,
		question, answer)
}
