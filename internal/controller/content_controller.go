package controller

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/serverutils"
	"github.com/DhairyaS450/personal-website-sub000/internal/service"
	"github.com/DhairyaS450/personal-website-sub000/internal/websocket"
	"github.com/DhairyaS450/personal-website-sub000/pkg/credential"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Put(ctx *fiber.Ctx) error
}

type contentController struct {
	contentService service.IContentService
	issuer         credential.Issuer
	hub            *websocket.Hub
	log            logger.ILogger
}

func NewContentController(
	contentService service.IContentService,
	issuer credential.Issuer,
	hub *websocket.Hub,
	log logger.ILogger,
) IContentController {
	return &contentController{
		contentService: contentService,
		issuer:         issuer,
		hub:            hub,
		log:            log,
	}
}

// RegisterRoutes mounts the content API at the root: the site frontend
// calls GET/PUT /content directly.
func (c *contentController) RegisterRoutes(r fiber.Router) {
	r.Get("/content", c.Get)
	r.Put("/content", serverutils.AdminAuthMiddleware(c.issuer), c.Put)

	if c.hub != nil {
		r.Use("/content/ws", func(ctx *fiber.Ctx) error {
			if fiberws.IsWebSocketUpgrade(ctx) {
				return ctx.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		r.Get("/content/ws", fiberws.New(func(conn *fiberws.Conn) {
			websocket.ServeWs(c.hub, conn)
		}))
	}
}

func (c *contentController) Get(ctx *fiber.Ctx) error {
	doc, _, err := c.contentService.Get(ctx.Context())
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Content not found"})
		}
		c.log.Error("ContentController", "Fetch failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch content"})
	}
	return ctx.JSON(doc)
}

// Put replaces the whole document. The body must be a non-null JSON object;
// null, strings and numbers are rejected before the store is touched.
func (c *contentController) Put(ctx *fiber.Ctx) error {
	body := bytes.TrimSpace(ctx.Body())
	if len(body) == 0 || body[0] != '{' {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid content format"})
	}

	var doc entity.WebsiteContent
	if err := json.Unmarshal(body, &doc); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid content format"})
	}

	if err := c.contentService.Replace(ctx.Context(), &doc); err != nil {
		c.log.Error("ContentController", "Replace failed", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update content"})
	}

	return ctx.JSON(fiber.Map{"success": true})
}
