// service/game_manager.go
package service

import (
	"fmt"
	"sync"

	"github.com/apex/log"
	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/google/uuid"
)

// GameManager owns every live session, keyed by game ID.
type GameManager struct {
	games map[string]*Session
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*Session),
	}
}

func (gm *GameManager) CreateGame(hotseat bool) *Session {
	return gm.add(NewSession(uuid.New().String(), hotseat))
}

// CreateGameFromBoard starts a session from a custom position.
func (gm *GameManager) CreateGameFromBoard(board *model.Board, toMove model.Color, hotseat bool) (*Session, error) {
	game, err := model.NewGameFromBoard(board, toMove)
	if err != nil {
		return nil, fmt.Errorf("failed to set up game: %w", err)
	}
	return gm.add(newSession(uuid.New().String(), game, hotseat)), nil
}

func (gm *GameManager) add(s *Session) *Session {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gm.games[s.ID] = s
	log.WithFields(log.Fields{"game": s.ID, "hotseat": s.hotseat}).Info("game created")
	return s
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return game, nil
}

func (gm *GameManager) RemoveGame(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	delete(gm.games, gameID)
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
