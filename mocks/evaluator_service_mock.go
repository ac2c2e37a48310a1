package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/ats-resume-checker/internal/models"
)

type MockEvaluatorService struct {
	mock.Mock
}

func (m *MockEvaluatorService) Run(ctx context.Context, req models.RunRequest) (*models.RunReport, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.RunReport), args.Error(1)
}
