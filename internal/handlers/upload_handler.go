package handlers

import (
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"jaythakor/ai-interviewer/internal/models"
	"jaythakor/ai-interviewer/internal/services"
)

// textSampleLength caps the résumé text echoed back in the upload response.
// Display convenience only; keyword extraction sees the full text.
const textSampleLength = 200

type UploadHandler struct {
	pdfParser   services.PDFParserService
	keywords    services.KeywordExtractorService
	maxFileSize int64
	topKeywords int
}

func NewUploadHandler(
	pdfParser services.PDFParserService,
	keywords services.KeywordExtractorService,
	maxFileSize int64,
	topKeywords int,
) *UploadHandler {
	return &UploadHandler{
		pdfParser:   pdfParser,
		keywords:    keywords,
		maxFileSize: maxFileSize,
		topKeywords: topKeywords,
	}
}

// HandleUpload handles POST /upload: résumé in, keywords out.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded. Please upload a PDF as the 'file' field.",
		})
	}

	// Size is rejected before any parsing attempt
	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	text, err := h.pdfParser.ExtractText(data)
	if err != nil {
		log.Printf("❌ Failed to parse uploaded document: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process document",
		})
	}

	text = services.CleanText(text)
	keywords := h.keywords.Extract(text, h.topKeywords)

	return c.JSON(models.UploadResponse{
		Success:    true,
		Keywords:   keywords,
		TextSample: truncate(text, textSampleLength),
	})
}

func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
