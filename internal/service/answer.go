package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"docqa/internal/generation"
)

var tracer = otel.Tracer("docqa/internal/service")

// AnswerService answers the latest question of a document. Answers are
// computed on every call and never stored.
type AnswerService interface {
	Answer(ctx context.Context, documentID string) (string, error)
}

type answerService struct {
	docs      DocumentService
	questions QuestionService
	gen       generation.Generator
	model     string
}

// NewAnswerService constructs a new AnswerService that asks gen using model.
func NewAnswerService(docs DocumentService, questions QuestionService, gen generation.Generator, model string) AnswerService {
	return &answerService{docs: docs, questions: questions, gen: gen, model: model}
}

// BuildPrompt joins document text and question into the generation prompt.
func BuildPrompt(content, question string) string {
	return content + "\n\nQuestion: " + question
}

func (s *answerService) Answer(ctx context.Context, documentID string) (string, error) {
	documentID, err := canonicalID(documentID)
	if err != nil {
		return "", err
	}

	ctx, span := tracer.Start(ctx, "answer", trace.WithAttributes(attribute.String("document.id", documentID)))
	defer span.End()

	stageCtx, stage := tracer.Start(ctx, "answer.resolve_document")
	doc, err := s.docs.Get(stageCtx, documentID)
	endStage(stage, err)
	if err != nil {
		return "", fail(span, err)
	}

	stageCtx, stage = tracer.Start(ctx, "answer.resolve_question")
	q, err := s.questions.FindLatestFor(stageCtx, documentID)
	endStage(stage, err)
	if err != nil {
		return "", fail(span, err)
	}
	span.SetAttributes(attribute.String("question.id", q.ID))

	stageCtx, stage = tracer.Start(ctx, "answer.generate", trace.WithAttributes(attribute.String("generation.model", s.model)))
	resp, err := s.gen.Generate(stageCtx, generation.Request{
		Prompt: BuildPrompt(doc.Content, q.Question),
		Model:  s.model,
	})
	endStage(stage, err)
	if err != nil {
		if errors.Is(err, generation.ErrMissingCredential) {
			return "", fail(span, generation.ErrMissingCredential)
		}
		return "", fail(span, &GenerationError{Err: err})
	}

	return resp.Text, nil
}

func endStage(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func fail(span trace.Span, err error) error {
	span.SetStatus(codes.Error, err.Error())
	return err
}
