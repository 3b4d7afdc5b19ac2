package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"jaythakor/ai-interviewer/internal/models"
	"jaythakor/ai-interviewer/internal/services"
)

type QuestionHandler struct {
	generator services.QuestionGeneratorService
}

func NewQuestionHandler(generator services.QuestionGeneratorService) *QuestionHandler {
	return &QuestionHandler{
		generator: generator,
	}
}

// HandleGenerateQuestions handles POST /api/generate-questions. Unlike the
// other endpoints, failures here include the upstream error text in the
// response details.
func (h *QuestionHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest

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

	questions, err := h.generator.Generate(c.Context(), req.Position, req.Keywords, req.NumQuestions)
	if err != nil {
		log.Printf("❌ Failed to generate questions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to generate questions",
			"details": err.Error(),
		})
	}

	return c.JSON(models.GenerateQuestionsResponse{
		Success:   true,
		Questions: questions,
	})
}
