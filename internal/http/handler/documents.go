package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docqa/internal/http/middleware"
	"docqa/internal/model"
	"docqa/internal/service"
)

type uploadResponse struct {
	Message  string `json:"message"`
	FileID   string `json:"fileId"`
	Filename string `json:"filename"`
}

type fileIDResponse struct {
	FileID string `json:"fileId"`
}

type downloadResponse struct {
	URL string `json:"url"`
}

// UploadDocument godoc
// @Summary      Upload a document
// @Description  Extracts the text of a PDF or plain-text file and stores it.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "document"
// @Success      200  {object}  uploadResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /upload [post]
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "no file uploaded")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Ingest(c.UserContext(), data, model.DocumentMeta{
			Filename:    fh.Filename,
			Encoding:    fh.Header.Get("Content-Transfer-Encoding"),
			ContentType: ct,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmptyFile):
				return writeError(c, fiber.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty")
			case errors.Is(err, service.ErrMetadataRequired):
				return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file name and type are required")
			case errors.Is(err, service.ErrUnsupportedFormat):
				return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_MEDIA_TYPE", "only PDF and plain text documents are supported")
			case errors.Is(err, service.ErrEmptyContent):
				return writeError(c, fiber.StatusBadRequest, "EMPTY_CONTENT", "no text could be extracted from the document")
			case errors.Is(err, service.ErrExtractionFailed):
				middleware.LoggerFromCtx(c).WithError(err).Warn("extraction failed")
				return writeError(c, fiber.StatusInternalServerError, "EXTRACTION_FAILED", "could not extract text from the document")
			default:
				return internalError(c, "ingest failed", err)
			}
		}

		return c.Status(fiber.StatusOK).JSON(uploadResponse{
			Message:  "File uploaded successfully",
			FileID:   doc.ID,
			Filename: doc.Filename,
		})
	}
}

// LatestFileID godoc
// @Summary      Most recent document id
// @Tags         documents
// @Produce      json
// @Success      200  {object}  fileIDResponse
// @Failure      404  {object}  errorResponse
// @Router       /get-file-id [get]
func LatestFileID(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Latest(c.UserContext())
		if err != nil {
			if errors.Is(err, service.ErrDocumentNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no files found")
			}
			return internalError(c, "latest document lookup failed", err)
		}
		return c.JSON(fileIDResponse{FileID: doc.ID})
	}
}

// ListDocuments godoc
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Param        limit   query  int  false  "page size"  default(10)
// @Param        offset  query  int  false  "offset"     default(0)
// @Success      200  {object}  service.DocumentListResult
// @Failure      400  {object}  errorResponse
// @Router       /files [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return internalError(c, "list documents failed", err)
		}
		return c.JSON(res)
	}
}

// GetDocument godoc
// @Summary      Get a document
// @Tags         documents
// @Produce      json
// @Param        id  path  string  true  "document id"
// @Success      200  {object}  model.Document
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /files/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_ID", "invalid or missing fileId format")
			case errors.Is(err, service.ErrDocumentNotFound):
				return writeError(c, fiber.StatusNotFound, "FILE_NOT_FOUND", "file not found")
			default:
				return internalError(c, "get document failed", err)
			}
		}
		return c.JSON(doc)
	}
}

// DownloadDocument godoc
// @Summary      Presigned download URL of the original file
// @Tags         documents
// @Produce      json
// @Param        id  path  string  true  "document id"
// @Success      200  {object}  downloadResponse
// @Failure      404  {object}  errorResponse
// @Router       /files/{id}/download [get]
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := svc.DownloadURL(c.UserContext(), c.Params("id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidID):
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_ID", "invalid or missing fileId format")
			case errors.Is(err, service.ErrDocumentNotFound):
				return writeError(c, fiber.StatusNotFound, "FILE_NOT_FOUND", "file not found")
			case errors.Is(err, service.ErrOriginalUnavailable):
				return writeError(c, fiber.StatusNotFound, "ORIGINAL_UNAVAILABLE", "original file is not archived")
			default:
				return internalError(c, "presign download failed", err)
			}
		}
		return c.JSON(downloadResponse{URL: url})
	}
}
