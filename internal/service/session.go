package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/apex/log"
	"github.com/benbeisheim/chess-rules/internal/model"
	"github.com/benbeisheim/chess-rules/internal/ws"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameFull     = errors.New("game is full")
	ErrNotSeated    = errors.New("player is not seated in this game")
	ErrConnected    = errors.New("player already has a connection to this game")
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// The connections watching a specific game
type sessionConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.RWMutex
}

type Seats struct {
	White string `json:"white"`
	Black string `json:"black"`
}

// Session wraps one GameState with its players and observers. All engine
// access goes through mu, so moves on the same game are serialized.
// broadcastMu is taken before mu is released, so states reach clients in
// the order they were produced.
type Session struct {
	ID          string
	mu          sync.Mutex
	broadcastMu sync.Mutex
	game        *model.GameState
	seats       Seats
	hotseat     bool
	connections *sessionConnections
}

// StateView is the snapshot sent to clients.
type StateView struct {
	ID       string               `json:"id"`
	Board    *model.Board         `json:"board"`
	ToMove   model.Color          `json:"toMove"`
	Ply      int                  `json:"ply"`
	Status   model.Status         `json:"status"`
	History  []model.Move         `json:"moveHistory"`
	Captured model.CapturedPieces `json:"capturedPieces"`
	LastMove *model.Move          `json:"lastMove"`
	Players  Seats                `json:"players"`
	Hotseat  bool                 `json:"hotseat"`
}

func NewSession(id string, hotseat bool) *Session {
	return newSession(id, model.NewGame(), hotseat)
}

func newSession(id string, game *model.GameState, hotseat bool) *Session {
	return &Session{
		ID:      id,
		game:    game,
		hotseat: hotseat,
		connections: &sessionConnections{
			connections: make(map[string]Conn),
		},
	}
}

// AddPlayer seats playerID and returns its color. In hot-seat games the
// first player takes both colors.
func (s *Session) AddPlayer(playerID string) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.seatOf(playerID); ok {
		return c, nil
	}
	switch {
	case s.hotseat && s.seats.White == "":
		s.seats = Seats{White: playerID, Black: playerID}
		return model.White, nil
	case s.seats.White == "":
		s.seats.White = playerID
		return model.White, nil
	case s.seats.Black == "":
		s.seats.Black = playerID
		return model.Black, nil
	}
	return "", ErrGameFull
}

// seatOf returns the color playerID may move right now. For hot-seat games
// that is always the side to move.
func (s *Session) seatOf(playerID string) (model.Color, bool) {
	switch {
	case playerID == "":
		return "", false
	case s.hotseat && s.seats.White == playerID:
		return s.game.ToMove(), true
	case s.seats.White == playerID:
		return model.White, true
	case s.seats.Black == playerID:
		return model.Black, true
	}
	return "", false
}

func (s *Session) IsPlayerInGame(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seatOf(playerID)
	return ok
}

func (s *Session) Snapshot() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() StateView {
	history := s.game.History()
	view := StateView{
		ID:       s.ID,
		Board:    s.game.Board(),
		ToMove:   s.game.ToMove(),
		Ply:      s.game.Ply(),
		Status:   s.game.Status(),
		History:  history,
		Captured: s.game.Captured(),
		Players:  s.seats,
		Hotseat:  s.hotseat,
	}
	if len(history) > 0 {
		view.LastMove = &history[len(history)-1]
	}
	return view
}

func (s *Session) LegalMoves(from string) ([]model.Move, error) {
	pos, err := model.ParsePosition(from)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMoves(pos)
}

// MakeMove applies req for playerID and broadcasts the new state to every
// connection watching the game.
func (s *Session) MakeMove(playerID string, req ws.MoveRequest) (model.AppliedMove, error) {
	from, err := model.ParsePosition(req.From)
	if err != nil {
		return model.AppliedMove{}, err
	}
	to, err := model.ParsePosition(req.To)
	if err != nil {
		return model.AppliedMove{}, err
	}

	s.mu.Lock()
	color, ok := s.seatOf(playerID)
	if !ok {
		s.mu.Unlock()
		return model.AppliedMove{}, ErrNotSeated
	}
	if color != s.game.ToMove() {
		s.mu.Unlock()
		return model.AppliedMove{}, fmt.Errorf("%w: %s to move", model.ErrWrongTurn, s.game.ToMove())
	}
	if s.game.Status().IsTerminal() {
		s.mu.Unlock()
		return model.AppliedMove{}, model.ErrTerminalState
	}
	move, err := s.game.FindMove(from, to, req.Promotion)
	if err != nil {
		s.mu.Unlock()
		return model.AppliedMove{}, err
	}
	applied, err := s.game.ApplyMove(move)
	if err != nil {
		s.mu.Unlock()
		return model.AppliedMove{}, err
	}
	s.publishAndUnlock()

	log.WithFields(log.Fields{
		"game":   s.ID,
		"player": playerID,
		"move":   applied.Move.String(),
		"status": applied.Status.Kind,
	}).Info("move applied")
	return applied, nil
}

func (s *Session) RegisterConnection(playerID string, conn Conn) error {
	ctx := log.WithFields(log.Fields{"game": s.ID, "player": playerID})

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		// Keep the healthy connection; the caller closes the duplicate.
		s.connections.mu.Unlock()
		ctx.Debug("rejecting duplicate connection")
		return ErrConnected
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()
	ctx.Debug("registered connection")

	s.mu.Lock()
	s.publishAndUnlock()
	return nil
}

func (s *Session) UnregisterConnection(playerID string) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if _, exists := s.connections.connections[playerID]; exists {
		log.WithFields(log.Fields{"game": s.ID, "player": playerID}).Debug("unregistering connection")
		delete(s.connections.connections, playerID)
	}
}

// publishAndUnlock snapshots the game and broadcasts it. The caller must hold
// s.mu, which is released once the broadcast slot is taken.
func (s *Session) publishAndUnlock() {
	view := s.snapshot()
	s.broadcastMu.Lock()
	defer s.broadcastMu.Unlock()
	s.mu.Unlock()
	s.broadcastState(view)
}

// broadcastState writes view to every connection, dropping the ones that fail.
func (s *Session) broadcastState(view StateView) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, view)
	if err != nil {
		log.WithError(err).WithField("game", s.ID).Error("failed to marshal state")
		return
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	for playerID, conn := range s.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.WithError(err).WithFields(log.Fields{"game": s.ID, "player": playerID}).Warn("failed to send state")
			delete(s.connections.connections, playerID)
		}
	}
}
