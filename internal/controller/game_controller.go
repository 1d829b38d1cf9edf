package controller

import (
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/benbeisheim/chess-rules/internal/service"
	"github.com/benbeisheim/chess-rules/internal/ws"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	Hotseat bool          `json:"hotseat"`
	Setup   *setupRequest `json:"setup,omitempty"`
}

// setupRequest is a custom starting position keyed by square name.
type setupRequest struct {
	ToMove model.Color            `json:"toMove"`
	Pieces map[string]model.Piece `json:"pieces"`
}

func (r *setupRequest) board() (*model.Board, error) {
	b := model.NewEmptyBoard()
	for name, p := range r.Pieces {
		pos, err := model.ParsePosition(name)
		if err != nil {
			return nil, err
		}
		if p.Color != model.White && p.Color != model.Black {
			return nil, fmt.Errorf("%s: unknown color %q", name, p.Color)
		}
		if !p.Type.IsValid() {
			return nil, fmt.Errorf("%s: unknown piece type %q", name, p.Type)
		}
		piece := model.NewPiece(p.Color, p.Type)
		piece.HasMoved = p.HasMoved
		b.Place(pos, piece)
	}
	return b, nil
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	var gameID string
	if req.Setup == nil {
		gameID = gc.gameService.CreateGame(req.Hotseat)
	} else {
		board, err := req.Setup.board()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		toMove := req.Setup.ToMove
		if toMove == "" {
			toMove = model.White
		}
		if gameID, err = gc.gameService.CreateGameFromBoard(board, toMove, req.Hotseat); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	from := c.Query("from")
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), from)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ws.LegalMovesResponse{From: from, Moves: moves})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req ws.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	playerID := c.Locals("playerID").(string)

	applied, err := gc.gameService.HandleMove(c.Params("gameId"), playerID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(applied)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.EndGame(c.Params("gameId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"games":  gc.gameService.ActiveGames(),
	})
}

// statusFor maps service and engine errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotSeated):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrGameFull),
		errors.Is(err, model.ErrWrongTurn),
		errors.Is(err, model.ErrTerminalState):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrInvalidCoordinate),
		errors.Is(err, model.ErrEmptySquare):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrInvalidPromotionChoice):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Path()).Error("request failed")
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
