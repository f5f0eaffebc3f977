package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"coopman/internal/ini"
	"coopman/internal/model"
)

type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) List(ctx context.Context) ([]model.Game, *time.Time, error) {
	args := m.Called(ctx)
	var games []model.Game
	if args.Get(0) != nil {
		games = args.Get(0).([]model.Game)
	}
	var last *time.Time
	if args.Get(1) != nil {
		last = args.Get(1).(*time.Time)
	}
	return games, last, args.Error(2)
}

func (m *MockGameService) Scan(ctx context.Context) ([]model.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Game), args.Error(1)
}

func (m *MockGameService) Get(ctx context.Context, id string) (model.Game, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Game), args.Error(1)
}

func (m *MockGameService) Settings(ctx context.Context, id string) ([]ini.Section, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ini.Section), args.Error(1)
}

func (m *MockGameService) SaveSettings(ctx context.Context, id string, values map[string]string) error {
	args := m.Called(ctx, id, values)
	return args.Error(0)
}

func (m *MockGameService) Launch(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGameService) CreateShortcut(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockGameService) PlayerCount(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockGameService) CoverArt(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
