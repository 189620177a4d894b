package controller

import (
	"errors"

	"github.com/benbeisheim/basicchess-backend/internal/model"
	"github.com/benbeisheim/basicchess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	FEN string `json:"fen"`
}

// errorStatus maps service and engine errors onto HTTP status codes.
func errorStatus(err error) int {
	var moveErr *model.MoveError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidFEN):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict
	case errors.As(err, &moveErr):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// gameID returns the id stored by middleware.RequireGameID.
func gameID(c *fiber.Ctx) string {
	if id, ok := c.Locals("gameID").(string); ok {
		return id
	}
	return c.Params("gameId")
}

func sendError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "malformed request body",
			})
		}
	}

	id, state, err := gc.gameService.CreateGame(req.FEN)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"gameId":  id,
		"state":   state,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(gameID(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) GetMoves(c *fiber.Ctx) error {
	square := model.Square{Row: c.QueryInt("row", -1), Col: c.QueryInt("col", -1)}
	if !square.InBounds() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "row and col must be between 0 and 7",
		})
	}

	moves, err := gc.gameService.SelectSquare(gameID(c), square)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"square": square,
		"moves":  moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.WSMove
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed move",
		})
	}

	result, err := gc.gameService.HandleMove(gameID(c), move)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return sendError(c, err)
		}
		// rejected moves still carry the position status
		return c.Status(errorStatus(err)).JSON(result)
	}
	return c.JSON(result)
}

func (gc *GameController) Click(c *fiber.Ctx) error {
	var req model.WSSquare
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed click",
		})
	}

	result, err := gc.gameService.HandleClick(gameID(c), req.Square)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return sendError(c, err)
		}
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error":  err.Error(),
			"result": result,
		})
	}
	return c.JSON(result)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	state, err := gc.gameService.ResetGame(gameID(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(state)
}
