package model

import (
	"errors"
	"sync"
	"time"

	"github.com/benbeisheim/basicchess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Watcher is one connection observing a game. Writes to it are serialized.
type Watcher struct {
	ID   string
	mu   sync.Mutex
	conn Conn
}

func NewWatcher(id string, conn Conn) *Watcher {
	return &Watcher{ID: id, conn: conn}
}

// Send writes msg to the connection.
func (w *Watcher) Send(msg ws.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(msg)
}

// GameConnections tracks the watchers of one game by ID.
type GameConnections struct {
	watchers map[string]*Watcher // watcher ID -> watcher
	mu       sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		watchers: make(map[string]*Watcher),
	}
}

// Game serializes every call into one GameState and fans the resulting
// position out to its watchers.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       *GameState
	selected    *Square
	lastMove    *Move
	lastActive  time.Time
	connections *GameConnections

	// broadcastMu is taken while mu is still held and released after the
	// fan-out, so watchers receive states in the order they were made.
	broadcastMu sync.Mutex
}

// ClickResult is the outcome of one square click.
type ClickResult struct {
	Selected   *Square     `json:"selected"`
	LegalMoves []Move      `json:"legalMoves"`
	MoveResult *MoveResult `json:"moveResult,omitempty"`
}

func NewGame(id string) *Game {
	return newGame(id, NewGameState())
}

// NewGameFromFEN starts a game from a custom position.
func NewGameFromFEN(id, fen string) (*Game, error) {
	state, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(id, state), nil
}

func newGame(id string, state *GameState) *Game {
	return &Game{
		ID:          id,
		state:       state,
		lastActive:  time.Now(),
		connections: NewGameConnections(),
	}
}

func (g *Game) GetState() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	snap := g.state.Snapshot()
	if g.selected != nil {
		sel := *g.selected
		snap.SelectedSquare = &sel
		snap.LegalMoves = g.state.SelectSquare(sel)
	}
	if g.lastMove != nil {
		last := *g.lastMove
		snap.LastMove = &last
	}
	return snap
}

// LastActive is the time of the last call that touched the game.
func (g *Game) LastActive() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.lastActive
}

func (g *Game) touch() {
	g.lastActive = time.Now()
}

// SelectSquare returns the legal moves of the piece on square without
// changing the game.
func (g *Game) SelectSquare(square Square) []Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	return g.state.SelectSquare(square)
}

func (g *Game) MakeMove(move WSMove) (MoveResult, error) {
	g.mu.Lock()
	result, err := g.makeMove(move.From, move.To)
	if err != nil {
		g.mu.Unlock()
		return result, err
	}
	snap := g.snapshot()
	g.broadcastMu.Lock()
	g.mu.Unlock()

	defer g.broadcastMu.Unlock()
	g.broadcastState(snap)
	return result, nil
}

func (g *Game) makeMove(from, to Square) (MoveResult, error) {
	g.touch()
	result, err := g.state.ApplyMove(from, to)
	if err != nil {
		log.Debugf("game %s: rejected %s-%s: %v", g.ID, from, to, err)
		return result, err
	}
	g.selected = nil
	g.lastMove = result.Move
	log.Infof("game %s: %s played %s, %s", g.ID, result.CurrentPlayer.Opponent(), result.Move, result.Message)
	if result.Status == StatusGameOver {
		log.Infof("game %s: over, winner %s", g.ID, *result.Winner)
	}
	return result, nil
}

// Click runs the two-click interaction: clicking a piece of the side to move
// selects it, clicking anything else while a piece is selected tries to move
// there and clears the selection.
func (g *Game) Click(square Square) (ClickResult, error) {
	g.mu.Lock()
	result, changed, err := g.click(square)
	if !changed {
		g.mu.Unlock()
		return result, err
	}
	snap := g.snapshot()
	g.broadcastMu.Lock()
	g.mu.Unlock()

	defer g.broadcastMu.Unlock()
	g.broadcastState(snap)
	return result, err
}

func (g *Game) click(square Square) (ClickResult, bool, error) {
	g.touch()
	if g.state.GameOver {
		return ClickResult{LegalMoves: []Move{}}, false, ErrGameOver
	}

	piece := g.state.Board.Get(square)
	if piece != nil && piece.Color == g.state.CurrentPlayer {
		sel := square
		g.selected = &sel
		return ClickResult{Selected: &sel, LegalMoves: g.state.SelectSquare(sel)}, true, nil
	}
	if g.selected == nil {
		return ClickResult{LegalMoves: []Move{}}, false, &MoveError{
			Err:    ErrInvalidSelection,
			From:   square,
			To:     square,
			Player: g.state.CurrentPlayer,
		}
	}

	from := *g.selected
	g.selected = nil
	moveResult, err := g.makeMove(from, square)
	return ClickResult{LegalMoves: []Move{}, MoveResult: &moveResult}, true, err
}

// Reset starts the game over from the standard position.
func (g *Game) Reset() Snapshot {
	g.mu.Lock()
	g.touch()
	g.state.Reset()
	g.selected = nil
	g.lastMove = nil
	snap := g.snapshot()
	g.broadcastMu.Lock()
	g.mu.Unlock()
	defer g.broadcastMu.Unlock()

	log.Infof("game %s: reset", g.ID)
	g.broadcastState(snap)
	return snap
}

// RegisterConnection adds w and sends it the current state. A watcher whose
// initial send fails is not kept.
func (g *Game) RegisterConnection(w *Watcher) error {
	g.mu.Lock()
	snap := g.snapshot()
	g.broadcastMu.Lock()
	g.mu.Unlock()
	defer g.broadcastMu.Unlock()

	g.connections.mu.Lock()
	if _, exists := g.connections.watchers[w.ID]; exists {
		g.connections.mu.Unlock()
		return errors.New("connection already registered")
	}
	g.connections.watchers[w.ID] = w
	g.connections.mu.Unlock()
	log.Debugf("game %s: registered watcher %s", g.ID, w.ID)

	// Send initial state
	msg, err := ws.NewMessage(ws.MessageTypeGameState, snap)
	if err == nil {
		err = w.Send(msg)
	}
	if err != nil {
		g.UnregisterConnection(w.ID)
		return err
	}
	return nil
}

func (g *Game) UnregisterConnection(watcherID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.watchers[watcherID]; exists {
		log.Debugf("game %s: unregistered watcher %s", g.ID, watcherID)
		delete(g.connections.watchers, watcherID)
	}
}

// WatcherCount returns the number of connections observing the game.
func (g *Game) WatcherCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()

	return len(g.connections.watchers)
}

// broadcastState sends snap to every watcher and drops the ones that fail.
func (g *Game) broadcastState(snap Snapshot) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, snap)
	if err != nil {
		log.Errorf("game %s: marshal state: %v", g.ID, err)
		return
	}

	// Copy the watchers so no lock is held while writing
	g.connections.mu.RLock()
	active := make([]*Watcher, 0, len(g.connections.watchers))
	for _, w := range g.connections.watchers {
		active = append(active, w)
	}
	g.connections.mu.RUnlock()

	for _, w := range active {
		if err := w.Send(msg); err != nil {
			log.Warnf("game %s: failed to send state to %s: %v", g.ID, w.ID, err)
			g.UnregisterConnection(w.ID)
		}
	}
}
