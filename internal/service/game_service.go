package service

import (
	"github.com/apex/log"
	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/benbeisheim/chess-rules/internal/ws"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(hotseat bool) string {
	return gs.gameManager.CreateGame(hotseat).ID
}

// CreateGameFromBoard starts a game from a custom position and returns its ID.
func (gs *GameService) CreateGameFromBoard(board *model.Board, toMove model.Color, hotseat bool) (string, error) {
	game, err := gs.gameManager.CreateGameFromBoard(board, toMove, hotseat)
	if err != nil {
		return "", err
	}
	return game.ID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	color, err := game.AddPlayer(playerID)
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"game": gameID, "player": playerID, "color": color}).Info("player joined")
	return color, nil
}

func (gs *GameService) GetGameState(gameID string) (StateView, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return StateView{}, err
	}
	return game.Snapshot(), nil
}

func (gs *GameService) LegalMoves(gameID string, from string) ([]model.Move, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(from)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move ws.MoveRequest) (model.AppliedMove, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.AppliedMove{}, err
	}
	return game.MakeMove(playerID, move)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}

// EndGame drops a session. Connected clients keep their sockets until they
// disconnect but receive no further updates.
func (gs *GameService) EndGame(gameID string) error {
	if _, err := gs.gameManager.GetGame(gameID); err != nil {
		return err
	}
	gs.gameManager.RemoveGame(gameID)
	log.WithField("game", gameID).Info("game removed")
	return nil
}

func (gs *GameService) ActiveGames() int {
	return gs.gameManager.Count()
}
