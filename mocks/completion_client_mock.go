package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockCompletionClient) Model() string {
	return "mock-model"
}
