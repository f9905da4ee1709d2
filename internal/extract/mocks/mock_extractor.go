package mocks

import (
	"context"

	"docqa/internal/extract"

	"github.com/stretchr/testify/mock"
)

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, data []byte, filename, mediaType string) (*extract.Result, error) {
	args := m.Called(ctx, data, filename, mediaType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extract.Result), args.Error(1)
}
