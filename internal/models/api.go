package models

type UploadResponse struct {
	Success    bool     `json:"success"`
	Keywords   []string `json:"keywords"`
	TextSample string   `json:"textSample"`
}

type StartInterviewRequest struct {
	Position string   `json:"position"`
	Keywords []string `json:"keywords"`
}

type StartInterviewResponse struct {
	Success       bool   `json:"success"`
	SessionID     string `json:"sessionId"`
	FirstQuestion string `json:"firstQuestion"`
}

type GenerateQuestionsRequest struct {
	Position     string   `json:"position"`
	Keywords     []string `json:"keywords"`
	NumQuestions int      `json:"numQuestions"`
}

type GenerateQuestionsResponse struct {
	Success   bool     `json:"success"`
	Questions []string `json:"questions"`
}

type EvaluateAnswerRequest struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
}

type EvaluateAnswerResponse struct {
	Success      bool           `json:"success"`
	Evaluation   Evaluation     `json:"evaluation"`
	IsComplete   bool           `json:"isComplete"`
	NextQuestion *string        `json:"nextQuestion,omitempty"`
	Summary      []AnswerRecord `json:"summary,omitempty"`
}
