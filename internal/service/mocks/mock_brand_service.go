package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapi/internal/model"
	"blogapi/internal/service"
)

type MockBrandService struct {
	mock.Mock
}

func (m *MockBrandService) Resolve(ctx context.Context) (model.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandService) Current() model.Brand {
	args := m.Called()
	return args.Get(0).(model.Brand)
}

func (m *MockBrandService) Update(ctx context.Context, u model.BrandUpdate) (model.Brand, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandService) UploadLogo(ctx context.Context, f service.UploadFile, progress func(float64)) (model.UploadResult, error) {
	args := m.Called(ctx, f, progress)
	return args.Get(0).(model.UploadResult), args.Error(1)
}

func (m *MockBrandService) ClearLogo(ctx context.Context) (model.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Brand), args.Error(1)
}

var _ service.BrandService = (*MockBrandService)(nil)
