package mocks

import (
	"context"

	"docqa/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) Submit(ctx context.Context, documentID, text string) (*model.Question, error) {
	args := m.Called(ctx, documentID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionService) FindLatestFor(ctx context.Context, documentID string) (*model.Question, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}
