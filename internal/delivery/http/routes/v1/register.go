package v1

import "github.com/gofiber/fiber/v3"

// RouteRegistrar is implemented by every versioned handler.
type RouteRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

func Register(r fiber.Router, registrars ...RouteRegistrar) {
	if r == nil {
		return
	}
	for _, reg := range registrars {
		if reg == nil {
			continue
		}
		reg.RegisterRoutes(r)
	}
}
