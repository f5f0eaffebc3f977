package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"coopman/internal/model"
)

type MockGameStore struct {
	mock.Mock
}

func (m *MockGameStore) LoadState(ctx context.Context) (*model.State, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.State), args.Error(1)
}

func (m *MockGameStore) SaveState(ctx context.Context, state *model.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}
