package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"docqa/docs"
	"docqa/internal/service"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Documents service.DocumentService
	Questions service.QuestionService
	Answers   service.AnswerService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate between HTTP and the services.
func RegisterRoutes(app *fiber.App, store Pinger, svc Services) {
	// The doc is read concurrently by every /swagger request; set it once here.
	// An empty host makes the UI call the host that served it.
	docs.SwaggerInfo.Host = ""
	docs.SwaggerInfo.Schemes = []string{}
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", HealthCheck(store))
	app.Get("/healthz", LivenessProbe())

	app.Post("/upload", UploadDocument(svc.Documents))
	app.Post("/ques", SubmitQuestion(svc.Questions))
	app.Post("/generate", GenerateAnswer(svc.Answers))
	app.Get("/get-file-id", LatestFileID(svc.Documents))

	app.Get("/files", ListDocuments(svc.Documents))
	app.Get("/files/:id", GetDocument(svc.Documents))
	app.Get("/files/:id/download", DownloadDocument(svc.Documents))
}
