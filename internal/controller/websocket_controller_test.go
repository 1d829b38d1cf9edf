package controller

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/benbeisheim/chess-rules/internal/service"
	"github.com/benbeisheim/chess-rules/internal/ws"
)

func TestHandleMessage(t *testing.T) {
	gameService := service.NewGameService(service.NewGameManager())
	gameID := gameService.CreateGame(false)
	if _, err := gameService.JoinGame(gameID, "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	wsc := NewWebSocketController(gameService)

	query, _ := ws.NewMessage(ws.MessageTypeLegalMoves, ws.LegalMovesRequest{From: "g1"})
	reply, err := wsc.handleMessage(gameID, "alice", query)
	if err != nil {
		t.Fatalf("legal moves: %v", err)
	}
	if reply == nil || reply.Type != ws.MessageTypeLegalMoves {
		t.Fatalf("expected legalMoves reply, got %+v", reply)
	}
	var moves ws.LegalMovesResponse
	if err := json.Unmarshal(reply.Payload, &moves); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if moves.From != "g1" || len(moves.Moves) != 2 {
		t.Fatalf("expected two knight moves from g1, got %+v", moves)
	}

	move, _ := ws.NewMessage(ws.MessageTypeMove, ws.MoveRequest{From: "g1", To: "f3"})
	if reply, err := wsc.handleMessage(gameID, "alice", move); err != nil || reply != nil {
		t.Fatalf("move: reply %+v, err %v", reply, err)
	}
	state, _ := gameService.GetGameState(gameID)
	if state.Ply != 1 {
		t.Fatalf("expected ply 1 after move, got %d", state.Ply)
	}

	tests := []struct {
		name    string
		msg     ws.Message
		wantErr error
	}{
		{
			name: "unknown type",
			msg:  ws.Message{Type: "resign", Payload: json.RawMessage(`{}`)},
		},
		{
			name: "malformed payload",
			msg:  ws.Message{Type: ws.MessageTypeMove, Payload: json.RawMessage(`"e2e4"`)},
		},
		{
			name:    "empty square",
			msg:     ws.Message{Type: ws.MessageTypeLegalMoves, Payload: json.RawMessage(`{"from":"e4"}`)},
			wantErr: model.ErrEmptySquare,
		},
		{
			name:    "out of turn",
			msg:     ws.Message{Type: ws.MessageTypeMove, Payload: json.RawMessage(`{"from":"d2","to":"d4"}`)},
			wantErr: model.ErrWrongTurn,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wsc.handleMessage(gameID, "alice", tt.msg)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
