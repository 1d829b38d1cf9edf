package controller

import (
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/benbeisheim/chess-rules/internal/service"
	"github.com/benbeisheim/chess-rules/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)
	ctx := log.WithFields(log.Fields{"game": gameID, "player": playerID})

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		ctx.WithError(err).Warn("failed to register connection")
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			ctx.WithError(err).Debug("read error")
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			ctx.WithError(err).Debug("parse error")
			continue
		}
		reply, err := wsc.handleMessage(gameID, playerID, msg)
		if err != nil {
			ctx.WithError(err).Debug("handle error")
			errMsg, _ := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
			reply = &errMsg
		}
		if reply != nil {
			if err := c.WriteJSON(reply); err != nil {
				ctx.WithError(err).Debug("write error")
				break
			}
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

// handleMessage dispatches one client message. Moves reply through the
// state broadcast, so only legal-move queries return a direct reply.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return nil, err
		}
		_, err := wsc.gameService.HandleMove(gameID, playerID, move)
		return nil, err

	case ws.MessageTypeLegalMoves:
		var req ws.LegalMovesRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, err
		}
		moves, err := wsc.gameService.LegalMoves(gameID, req.From)
		if err != nil {
			return nil, err
		}
		reply, err := ws.NewMessage(ws.MessageTypeLegalMoves, ws.LegalMovesResponse{From: req.From, Moves: moves})
		return &reply, err

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
