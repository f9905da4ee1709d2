package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"docqa/internal/storage"
)

var _ storage.Storage = (*MockStorage)(nil)

// MockStorage is a testify mock of storage.Storage. Put accepts either a
// storage.ObjectInfo or a func computing one from the call arguments.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) (storage.ObjectInfo, error) {
	ret := m.Called(ctx, key, r, opt)

	var info storage.ObjectInfo
	switch v := ret.Get(0).(type) {
	case func(context.Context, string, io.Reader, storage.PutObjectOptions) storage.ObjectInfo:
		info = v(ctx, key, r, opt)
	case storage.ObjectInfo:
		info = v
	}
	return info, ret.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	ret := m.Called(ctx, key, expiry)
	return ret.String(0), ret.Error(1)
}
