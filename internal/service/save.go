package service

import (
	"context"

	"coopman/internal/saves"
)

// SaveService exposes save-file operations for known games.
type SaveService interface {
	// Overview lists saves and backup sets for a game.
	Overview(ctx context.Context, id string) (*saves.Overview, error)

	// Backup snapshots every save file. Returns the backup timestamp and
	// how many files were copied.
	Backup(ctx context.Context, id string) (string, int, error)

	// Transfer copies saves between base game and co-op mod.
	Transfer(ctx context.Context, id, direction string) (*saves.TransferResult, error)

	// Restore brings a backup set back as base or co-op saves.
	Restore(ctx context.Context, id, timestamp, dest string) (int, error)

	// DeleteBackup removes one backup set.
	DeleteBackup(ctx context.Context, id, timestamp string) (int, error)
}

type saveService struct {
	games   GameService
	manager *saves.Manager
}

// NewSaveService constructs a SaveService.
func NewSaveService(games GameService, manager *saves.Manager) SaveService {
	return &saveService{games: games, manager: manager}
}

func (s *saveService) Overview(ctx context.Context, id string) (*saves.Overview, error) {
	g, err := s.games.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.manager.List(g)
}

func (s *saveService) Backup(ctx context.Context, id string) (string, int, error) {
	g, err := s.games.Get(ctx, id)
	if err != nil {
		return "", 0, err
	}
	return s.manager.Backup(g)
}

func (s *saveService) Transfer(ctx context.Context, id, direction string) (*saves.TransferResult, error) {
	g, err := s.games.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.manager.Transfer(g, direction)
}

func (s *saveService) Restore(ctx context.Context, id, timestamp, dest string) (int, error) {
	g, err := s.games.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.manager.Restore(g, timestamp, dest)
}

func (s *saveService) DeleteBackup(ctx context.Context, id, timestamp string) (int, error) {
	g, err := s.games.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.manager.DeleteBackup(g, timestamp)
}
