package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapi/internal/live"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Watch(ctx context.Context, q repository.Query) (<-chan live.Snapshot[model.Post], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan live.Snapshot[model.Post]), args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, in model.PostInput, actorEmail string) (*model.Post, error) {
	args := m.Called(ctx, in, actorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, id string, patch model.PostPatch, actorEmail string) (*model.Post, error) {
	args := m.Called(ctx, id, patch, actorEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostService) Get(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) List(ctx context.Context, q repository.Query) ([]model.Post, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostService) GetVisible(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) ListVisible(ctx context.Context, f service.VisibleFilter) ([]model.Post, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostService) Seed(ctx context.Context, actorEmail string) (service.SeedResult, error) {
	args := m.Called(ctx, actorEmail)
	return args.Get(0).(service.SeedResult), args.Error(1)
}

var _ service.PostService = (*MockPostService)(nil)
