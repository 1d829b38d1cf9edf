package ws

import (
	"encoding/json"

	"github.com/benbeisheim/chess-rules/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeLegalMoves MessageType = "legalMoves"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MoveRequest is a move submitted by a client. Squares use names like "e2".
// Promotion is required when a pawn reaches the last rank.
type MoveRequest struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Promotion model.PieceType `json:"promotion,omitempty"`
}

type LegalMovesRequest struct {
	From string `json:"from"`
}

type LegalMovesResponse struct {
	From  string       `json:"from"`
	Moves []model.Move `json:"moves"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage wraps payload in an envelope of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
