package routes

import (
	v1 "youthbridge/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, jobs, candidates, matches v1.RouteRegistrar) {
	if r == nil {
		return
	}
	v1.Register(r, jobs, candidates, matches)
}
