package controller

import (
	"github.com/benbeisheim/basicchess-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes wires the REST and websocket endpoints onto app.
func RegisterRoutes(app *fiber.App, gameController *GameController, wsController *WebSocketController) {
	// Set up WebSocket routes
	app.Get("/ws/game/:gameId",
		middleware.RequireGameID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		}),
	)

	// Set up REST routes
	gameRoutes := app.Group("/api/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", middleware.RequireGameID(), gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves", middleware.RequireGameID(), gameController.GetMoves)
	gameRoutes.Post("/:gameId/move", middleware.RequireGameID(), gameController.MakeMove)
	gameRoutes.Post("/:gameId/click", middleware.RequireGameID(), gameController.Click)
	gameRoutes.Post("/:gameId/reset", middleware.RequireGameID(), gameController.ResetGame)
}
