package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"docqa/internal/model"
	"docqa/internal/repository"
)

// QuestionService attaches questions to documents and resolves the latest one.
type QuestionService interface {
	// Submit stores a question for an existing document.
	Submit(ctx context.Context, documentID, text string) (*model.Question, error)

	// FindLatestFor returns the most recently submitted question of a document.
	FindLatestFor(ctx context.Context, documentID string) (*model.Question, error)
}

type questionService struct {
	docs      repository.DocumentRepository
	questions repository.QuestionRepository
	now       func() time.Time
}

// NewQuestionService constructs a new QuestionService.
func NewQuestionService(docs repository.DocumentRepository, questions repository.QuestionRepository) QuestionService {
	return &questionService{docs: docs, questions: questions, now: time.Now}
}

func (s *questionService) Submit(ctx context.Context, documentID, text string) (*model.Question, error) {
	documentID, err := canonicalID(documentID)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidQuestion
	}

	// The reference is checked once, here; questions are never revalidated.
	if _, err := s.docs.FindByID(ctx, documentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	return s.questions.Create(ctx, &model.Question{
		ID:         uuid.New().String(),
		DocumentID: documentID,
		Question:   text,
		CreatedAt:  s.now().UTC(),
	})
}

func (s *questionService) FindLatestFor(ctx context.Context, documentID string) (*model.Question, error) {
	documentID, err := canonicalID(documentID)
	if err != nil {
		return nil, err
	}
	q, err := s.questions.FindLatestByDocument(ctx, documentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}
