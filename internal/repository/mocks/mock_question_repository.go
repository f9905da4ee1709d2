package mocks

import (
	"context"

	"docqa/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, q *model.Question) (*model.Question, error) {
	args := m.Called(ctx, q)
	if f, ok := args.Get(0).(func(context.Context, *model.Question) *model.Question); ok {
		return f(ctx, q), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindLatestByDocument(ctx context.Context, documentID string) (*model.Question, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}
