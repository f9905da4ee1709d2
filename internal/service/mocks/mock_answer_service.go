package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) Answer(ctx context.Context, documentID string) (string, error) {
	args := m.Called(ctx, documentID)
	return args.String(0), args.Error(1)
}
