package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"jaythakor/ai-interviewer/internal/models"
	"jaythakor/ai-interviewer/internal/repositories"
	"jaythakor/ai-interviewer/internal/services"
)

type InterviewHandler struct {
	interviews services.InterviewService
}

func NewInterviewHandler(interviews services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviews: interviews,
	}
}

// HandleStartInterview handles POST /start-interview.
func (h *InterviewHandler) HandleStartInterview(c *fiber.Ctx) error {
	var req models.StartInterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Position == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "position is required",
		})
	}
	if len(req.Keywords) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "keywords are required",
		})
	}

	session, err := h.interviews.Start(c.Context(), req.Position, req.Keywords)
	if err != nil {
		log.Printf("❌ Failed to start interview: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start interview",
		})
	}

	return c.JSON(models.StartInterviewResponse{
		Success:       true,
		SessionID:     session.ID,
		FirstQuestion: session.Questions[0],
	})
}

// HandleEvaluateAnswer handles POST /evaluate-answer. Upstream evaluation
// failures never surface here: the evaluator substitutes its default verdict
// and this handler still answers 200.
func (h *InterviewHandler) HandleEvaluateAnswer(c *fiber.Ctx) error {
	var req models.EvaluateAnswerRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	result, err := h.interviews.SubmitAnswer(c.Context(), req.SessionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		case errors.Is(err, services.ErrAnswerRequired),
			errors.Is(err, services.ErrNoCurrentQuestion),
			errors.Is(err, services.ErrInterviewComplete):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			log.Printf("❌ Failed to evaluate answer: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to evaluate answer",
			})
		}
	}

	resp := models.EvaluateAnswerResponse{
		Success:    true,
		Evaluation: result.Evaluation,
		IsComplete: result.IsComplete,
	}
	if result.IsComplete {
		resp.Summary = result.Summary
	} else {
		resp.NextQuestion = &result.NextQuestion
	}

	return c.JSON(resp)
}
