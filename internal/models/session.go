package models

import (
	"fmt"
	"time"
)

const (
	RatingPoor      = "Poor"
	RatingFair      = "Fair"
	RatingGood      = "Good"
	RatingExcellent = "Excellent"
)

// Evaluation is the structured verdict for a single interview answer.
type Evaluation struct {
	Score    int    `json:"score"`
	Rating   string `json:"rating"`
	Feedback string `json:"feedback"`
	FollowUp string `json:"followUp"`
}

// Validate checks the evaluation against the expected schema: score in [1,4],
// a known rating label, and non-empty feedback/follow-up text.
func (e Evaluation) Validate() error {
	if e.Score < 1 || e.Score > 4 {
		return fmt.Errorf("score %d out of range [1,4]", e.Score)
	}
	switch e.Rating {
	case RatingPoor, RatingFair, RatingGood, RatingExcellent:
	default:
		return fmt.Errorf("unknown rating %q", e.Rating)
	}
	if e.Feedback == "" {
		return fmt.Errorf("feedback is empty")
	}
	if e.FollowUp == "" {
		return fmt.Errorf("followUp is empty")
	}
	return nil
}

// AnswerRecord pairs a question with the candidate's answer and its evaluation.
type AnswerRecord struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Evaluation Evaluation `json:"evaluation"`
}

// InterviewSession tracks one candidate's progress through a fixed question
// sequence. Sessions are held in memory for the lifetime of the process.
type InterviewSession struct {
	ID                   string         `json:"id"`
	Position             string         `json:"position"`
	Keywords             []string       `json:"keywords"`
	Questions            []string       `json:"questions"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`
	Answers              []AnswerRecord `json:"answers"`
	CreatedAt            time.Time      `json:"createdAt"`
}

// CurrentQuestion returns the question awaiting an answer, or false when the
// session has no questions or the index points past the end.
func (s *InterviewSession) CurrentQuestion() (string, bool) {
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.Questions) {
		return "", false
	}
	return s.Questions[s.CurrentQuestionIndex], true
}

// IsComplete reports whether every question has a recorded answer.
func (s *InterviewSession) IsComplete() bool {
	return len(s.Questions) > 0 && len(s.Answers) >= len(s.Questions)
}
