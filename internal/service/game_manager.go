// service/game_manager.go
package service

import (
	"errors"
	"sync"
	"time"

	"github.com/benbeisheim/basicchess-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/exp/maps"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// GameManager keeps every live game in memory. A game lives as long as its
// page session keeps touching it; the reaper drops the idle ones.
type GameManager struct {
	games   map[string]*model.Game
	mu      sync.RWMutex
	idleTTL time.Duration
	now     func() time.Time
	done    chan struct{}
	stopped sync.Once
}

func NewGameManager(idleTTL, reapInterval time.Duration) *GameManager {
	gm := &GameManager{
		games:   make(map[string]*model.Game),
		idleTTL: idleTTL,
		now:     time.Now,
		done:    make(chan struct{}),
	}

	// Start idle game reaper
	go gm.processReaping(reapInterval)

	return gm
}

func (gm *GameManager) processReaping(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := gm.ReapIdle(); n > 0 {
				log.Infof("reaped %d idle games, %d still live", n, gm.Count())
			}
		case <-gm.done:
			return
		}
	}
}

// ReapIdle removes games untouched for longer than the idle TTL that nobody
// is watching, and returns how many were removed.
func (gm *GameManager) ReapIdle() int {
	gm.mu.RLock()
	games := make(map[string]*model.Game, len(gm.games))
	maps.Copy(games, gm.games)
	gm.mu.RUnlock()

	cutoff := gm.now().Add(-gm.idleTTL)
	reaped := 0
	for id := range games {
		gm.mu.Lock()
		game, exists := gm.games[id]
		if exists && game.WatcherCount() == 0 && game.LastActive().Before(cutoff) {
			delete(gm.games, id)
			reaped++
			log.Debugf("game %s: reaped", id)
		}
		gm.mu.Unlock()
	}
	return reaped
}

// Close stops the reaper.
func (gm *GameManager) Close() {
	gm.stopped.Do(func() { close(gm.done) })
}

func (gm *GameManager) CreateGame(gameID string) (*model.Game, error) {
	return gm.addGame(model.NewGame(gameID))
}

// CreateGameFromFEN registers a game starting from a custom position.
func (gm *GameManager) CreateGameFromFEN(gameID, fen string) (*model.Game, error) {
	game, err := model.NewGameFromFEN(gameID, fen)
	if err != nil {
		return nil, err
	}
	return gm.addGame(game)
}

func (gm *GameManager) addGame(game *model.Game) (*model.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[game.ID]; exists {
		return nil, ErrGameExists
	}

	gm.games[game.ID] = game
	log.Infof("game %s: created", game.ID)
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

// Count returns the number of live games.
func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	return len(gm.games)
}
