package objectstore

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Upload(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, objectName, contentType, data)
	return args.String(0), args.Error(1)
}
