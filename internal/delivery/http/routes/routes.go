package routes

import (
	"youthbridge/internal/delivery/http/handler"
	"youthbridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health     *handler.HealthHandler
	jobs       *handler.JobsHandler
	candidates *handler.CandidatesHandler
	matches    *handler.MatchHandler
	board      *ws.Handler
}

func NewRegistry(jobs *handler.JobsHandler, candidates *handler.CandidatesHandler, matches *handler.MatchHandler, board *ws.Handler) *Registry {
	return &Registry{
		health:     handler.NewHealthHandler(),
		jobs:       jobs,
		candidates: candidates,
		matches:    matches,
		board:      board,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.jobs, r.candidates, r.matches)

	if r.board != nil {
		app.Get("/ws/board", r.board.HandleBoardWS)
	}
}
