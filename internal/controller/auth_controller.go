package controller

import (
	"errors"

	"github.com/DhairyaS450/personal-website-sub000/internal/dto"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"
	"github.com/DhairyaS450/personal-website-sub000/internal/service"
	"github.com/DhairyaS450/personal-website-sub000/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	limiter     ratelimit.Limiter
}

func NewAuthController(authService service.IAuthService, limiter ratelimit.Limiter) IAuthController {
	return &authController{
		authService: authService,
		limiter:     limiter,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Post("/auth", c.Login)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	if !c.limiter.Allow(ctx.Context(), "auth:"+ctx.IP()) {
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many attempts"})
	}

	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil || req.Password == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, apperror.ErrUnauthorized) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return err
	}

	return ctx.JSON(res)
}
