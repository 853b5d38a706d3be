package chatapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nextalk-ai/nextalk/pkg/chat"
	"github.com/nextalk-ai/nextalk/pkg/chat/chatsrv"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
)

type ChatHandlers struct {
	service *chatsrv.ChatService
}

func NewChatHandlers(service *chatsrv.ChatService) *ChatHandlers {
	return &ChatHandlers{service: service}
}

func (h *ChatHandlers) RegisterRoutes(router fiber.Router) {
	router.Post("/chat", h.Chat)

	session := router.Group("/session")
	session.Get("/:session_id/messages", h.GetSessionMessages)
	session.Post("/:session_id/messages", h.ControlSession)
}

func (h *ChatHandlers) Chat(c *fiber.Ctx) error {
	var req chat.TurnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	response, err := h.service.HandleTurn(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

func (h *ChatHandlers) GetSessionMessages(c *fiber.Ctx) error {
	sessionID := kernel.SessionID(c.Params("session_id"))

	messages, err := h.service.GetSessionMessages(c.Context(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"messages": messages})
}

type sessionControlRequest struct {
	Action string `json:"action"`
}

func (h *ChatHandlers) ControlSession(c *fiber.Ctx) error {
	sessionID := kernel.SessionID(c.Params("session_id"))

	var req sessionControlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Action != "clear" {
		return chat.ErrUnknownAction().WithDetail("action", req.Action)
	}

	if err := h.service.ClearSession(c.Context(), sessionID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "cleared"})
}
