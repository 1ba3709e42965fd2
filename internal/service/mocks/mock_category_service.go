package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapi/internal/live"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Watch(ctx context.Context, q repository.Query) (<-chan live.Snapshot[model.Category], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan live.Snapshot[model.Category]), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryService) List(ctx context.Context, q repository.Query) ([]model.Category, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

var _ service.CategoryService = (*MockCategoryService)(nil)
