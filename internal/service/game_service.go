package service

import (
	"fmt"

	"github.com/benbeisheim/basicchess-backend/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame starts a new game, from the standard position when fen is empty.
func (gs *GameService) CreateGame(fen string) (string, model.Snapshot, error) {
	gameID := uuid.New().String()

	var (
		game *model.Game
		err  error
	)
	if fen == "" {
		game, err = gs.gameManager.CreateGame(gameID)
	} else {
		game, err = gs.gameManager.CreateGameFromFEN(gameID, fen)
	}
	if err != nil {
		return "", model.Snapshot{}, fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, game.GetState(), nil
}

func (gs *GameService) GetGameState(gameID string) (model.Snapshot, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return game.GetState(), nil
}

func (gs *GameService) SelectSquare(gameID string, square model.Square) ([]model.Move, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.SelectSquare(square), nil
}

// HandleMove applies a move. A rejected move returns the rejection result
// together with the error.
func (gs *GameService) HandleMove(gameID string, move model.WSMove) (model.MoveResult, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.MoveResult{}, err
	}
	return game.MakeMove(move)
}

func (gs *GameService) HandleClick(gameID string, square model.Square) (model.ClickResult, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.ClickResult{}, err
	}
	return game.Click(square)
}

func (gs *GameService) ResetGame(gameID string) (model.Snapshot, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return game.Reset(), nil
}

func (gs *GameService) RegisterConnection(gameID string, watcher *model.Watcher) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(watcher)
}

func (gs *GameService) UnregisterConnection(gameID string, watcherID string) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(watcherID)
}
