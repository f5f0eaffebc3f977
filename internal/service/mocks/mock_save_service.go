package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"coopman/internal/saves"
)

type MockSaveService struct {
	mock.Mock
}

func (m *MockSaveService) Overview(ctx context.Context, id string) (*saves.Overview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*saves.Overview), args.Error(1)
}

func (m *MockSaveService) Backup(ctx context.Context, id string) (string, int, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Int(1), args.Error(2)
}

func (m *MockSaveService) Transfer(ctx context.Context, id, direction string) (*saves.TransferResult, error) {
	args := m.Called(ctx, id, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*saves.TransferResult), args.Error(1)
}

func (m *MockSaveService) Restore(ctx context.Context, id, timestamp, dest string) (int, error) {
	args := m.Called(ctx, id, timestamp, dest)
	return args.Int(0), args.Error(1)
}

func (m *MockSaveService) DeleteBackup(ctx context.Context, id, timestamp string) (int, error) {
	args := m.Called(ctx, id, timestamp)
	return args.Int(0), args.Error(1)
}
