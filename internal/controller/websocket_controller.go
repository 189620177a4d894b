package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benbeisheim/basicchess-backend/internal/model"
	"github.com/benbeisheim/basicchess-backend/internal/service"
	"github.com/benbeisheim/basicchess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
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
	gameID, ok := c.Locals("gameID").(string)
	if !ok {
		gameID = c.Params("gameId")
	}
	watcher := model.NewWatcher(uuid.New().String(), c)

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, watcher); err != nil {
		log.Warnf("game %s: failed to register connection: %v", gameID, err)
		wsc.sendError(watcher, err)
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, watcher.ID)

	// Start message handling loop
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("game %s: read error: %v", gameID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(watcher, fmt.Errorf("parse error: %w", err))
			continue
		}

		reply, err := wsc.handleMessage(gameID, msg)
		if err != nil {
			wsc.sendError(watcher, err)
			continue
		}
		if reply != nil {
			if err := watcher.Send(*reply); err != nil {
				log.Debugf("game %s: write error: %v", gameID, err)
				return
			}
		}
	}
}

// handleMessage runs one client request and returns the direct reply, if
// any. State changes reach every watcher through the game broadcast.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) (*ws.Message, error) {
	var (
		payload interface{}
		replyTy ws.MessageType
		err     error
	)

	switch msg.Type {
	case ws.MessageTypeSelect:
		var req model.WSSquare
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, err
		}
		replyTy = ws.MessageTypeMoves
		payload, err = wsc.gameService.SelectSquare(gameID, req.Square)

	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return nil, err
		}
		replyTy = ws.MessageTypeMoveResult
		// a rejected move is reported through its result, not as an error
		payload, err = wsc.gameService.HandleMove(gameID, move)
		var rejected *model.MoveError
		if errors.As(err, &rejected) {
			err = nil
		}

	case ws.MessageTypeClick:
		var req model.WSSquare
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, err
		}
		result, clickErr := wsc.gameService.HandleClick(gameID, req.Square)
		if clickErr != nil && result.MoveResult == nil {
			return nil, clickErr
		}
		if result.MoveResult != nil {
			replyTy, payload = ws.MessageTypeMoveResult, result.MoveResult
		} else {
			replyTy, payload = ws.MessageTypeMoves, result.LegalMoves
		}

	case ws.MessageTypeReset:
		_, err = wsc.gameService.ResetGame(gameID)
		return nil, err

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}

	if err != nil {
		return nil, err
	}
	reply, err := ws.NewMessage(replyTy, payload)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(w *model.Watcher, err error) {
	msg, marshalErr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if marshalErr != nil {
		return
	}
	if err := w.Send(msg); err != nil {
		log.Debugf("failed to send error to %s: %v", w.ID, err)
	}
}
