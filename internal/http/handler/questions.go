package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docqa/internal/service"
)

type submitQuestionRequest struct {
	Question string `json:"question"`
	FileID   string `json:"fileId"`
}

type questionView struct {
	ID       string `json:"_id"`
	Question string `json:"question"`
	FileID   string `json:"fileId"`
}

type submitQuestionResponse struct {
	Message  string       `json:"message"`
	Question questionView `json:"question"`
}

// SubmitQuestion godoc
// @Summary      Attach a question to a document
// @Description  The most recently submitted question is the one answered by /generate.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        body  body  submitQuestionRequest  true  "question"
// @Success      200  {object}  submitQuestionResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /ques [post]
func SubmitQuestion(svc service.QuestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req submitQuestionRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		}

		q, err := svc.Submit(c.UserContext(), req.FileID, req.Question)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_ID", "invalid or missing fileId format")
			case errors.Is(err, service.ErrInvalidQuestion):
				return writeError(c, fiber.StatusBadRequest, "INVALID_QUESTION", "question is required")
			case errors.Is(err, service.ErrDocumentNotFound):
				return writeError(c, fiber.StatusBadRequest, "FILE_NOT_FOUND", "file not found")
			default:
				return internalError(c, "save question failed", err)
			}
		}

		return c.Status(fiber.StatusOK).JSON(submitQuestionResponse{
			Message: "Question saved successfully",
			Question: questionView{
				ID:       q.ID,
				Question: q.Question,
				FileID:   q.DocumentID,
			},
		})
	}
}
