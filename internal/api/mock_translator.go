package api

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	args := m.Called(ctx, text, target)
	return args.String(0), args.Error(1)
}
