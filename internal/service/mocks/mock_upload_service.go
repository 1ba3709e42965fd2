package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"blogapi/internal/model"
	"blogapi/internal/service"
	"blogapi/internal/storage"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, f service.UploadFile, opts service.UploadOptions) (model.UploadResult, error) {
	args := m.Called(ctx, f, opts)
	return args.Get(0).(model.UploadResult), args.Error(1)
}

func (m *MockUploadService) UploadMany(ctx context.Context, files []service.UploadFile, opts service.UploadOptions) model.BulkUploadResult {
	args := m.Called(ctx, files, opts)
	return args.Get(0).(model.BulkUploadResult)
}

func (m *MockUploadService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockUploadService) Metadata(ctx context.Context, key string) (*service.ObjectMeta, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ObjectMeta), args.Error(1)
}

func (m *MockUploadService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

var _ service.UploadService = (*MockUploadService)(nil)
