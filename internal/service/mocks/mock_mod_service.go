package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"coopman/internal/model"
	"coopman/internal/service"
)

type MockModService struct {
	mock.Mock
}

func (m *MockModService) Status(ctx context.Context, id string) (*service.ModStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ModStatus), args.Error(1)
}

func (m *MockModService) Install(ctx context.Context, id, archiveName string) (*service.InstallResult, error) {
	args := m.Called(ctx, id, archiveName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InstallResult), args.Error(1)
}

func (m *MockModService) Uninstall(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockModService) CleanupArchives(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockModService) CheckUpdate(ctx context.Context, id string) (*model.UpdateInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UpdateInfo), args.Error(1)
}

func (m *MockModService) CheckAllUpdates(ctx context.Context) ([]model.UpdateInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UpdateInfo), args.Error(1)
}
