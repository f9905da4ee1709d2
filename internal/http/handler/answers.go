package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docqa/internal/generation"
	"docqa/internal/http/middleware"
	"docqa/internal/service"
)

type generateRequest struct {
	FileID string `json:"fileId"`
}

type generateResponse struct {
	Answer string `json:"answer"`
}

// GenerateAnswer godoc
// @Summary      Answer the latest question of a document
// @Description  Every call asks the generation service again; answers are not stored.
// @Tags         answers
// @Accept       json
// @Produce      json
// @Param        body  body  generateRequest  true  "document"
// @Success      200  {object}  generateResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /generate [post]
func GenerateAnswer(svc service.AnswerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req generateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		}

		answer, err := svc.Answer(c.UserContext(), req.FileID)
		if err != nil {
			var genErr *service.GenerationError
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_ID", "invalid or missing fileId format")
			case errors.Is(err, service.ErrDocumentNotFound):
				return writeError(c, fiber.StatusNotFound, "FILE_NOT_FOUND", "file not found")
			case errors.Is(err, service.ErrQuestionNotFound):
				return writeError(c, fiber.StatusBadRequest, "QUESTION_NOT_FOUND", "question not found")
			case errors.Is(err, generation.ErrMissingCredential):
				middleware.LoggerFromCtx(c).Error("generation API key is not configured")
				return writeError(c, fiber.StatusInternalServerError, "MISSING_CREDENTIAL", "API key is missing")
			case errors.As(err, &genErr):
				middleware.LoggerFromCtx(c).WithError(genErr.Err).Error("generation failed")
				return writeErrorDetails(c, fiber.StatusInternalServerError, "GENERATION_FAILED", "error generating response from AI", genErr.Err.Error())
			default:
				return internalError(c, "answer failed", err)
			}
		}

		return c.JSON(generateResponse{Answer: answer})
	}
}
