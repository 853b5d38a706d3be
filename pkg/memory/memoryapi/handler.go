package memoryapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/memory"
	"github.com/nextalk-ai/nextalk/pkg/memory/memorysrv"
	"github.com/nextalk-ai/nextalk/pkg/profile"
)

type MemoryHandlers struct {
	service *memorysrv.MemoryService
}

func NewMemoryHandlers(service *memorysrv.MemoryService) *MemoryHandlers {
	return &MemoryHandlers{service: service}
}

func (h *MemoryHandlers) RegisterRoutes(router fiber.Router) {
	memories := router.Group("/memory")

	memories.Get("/:user_profile_id", h.ListMemories)
	memories.Post("/:user_profile_id", h.SaveMemory)
	memories.Delete("/:user_profile_id/:memory_id", h.DeleteMemory)
}

func (h *MemoryHandlers) ListMemories(c *fiber.Ctx) error {
	profileID, err := kernel.ParseProfileID(c.Params("user_profile_id"))
	if err != nil {
		return profile.ErrInvalidProfileID().WithDetail("profile_id", c.Params("user_profile_id"))
	}

	memories, err := h.service.ListMemories(c.Context(), profileID)
	if err != nil {
		return err
	}

	responses := make([]memory.MemoryResponse, len(memories))
	for i, m := range memories {
		responses[i] = m.ToResponse()
	}

	return c.JSON(fiber.Map{"memories": responses})
}

func (h *MemoryHandlers) SaveMemory(c *fiber.Ctx) error {
	profileID, err := kernel.ParseProfileID(c.Params("user_profile_id"))
	if err != nil {
		return profile.ErrInvalidProfileID().WithDetail("profile_id", c.Params("user_profile_id"))
	}

	var req memory.CreateMemoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	m, err := h.service.SaveMemory(c.Context(), profileID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(m.ToResponse())
}

func (h *MemoryHandlers) DeleteMemory(c *fiber.Ctx) error {
	profileID, err := kernel.ParseProfileID(c.Params("user_profile_id"))
	if err != nil {
		return profile.ErrInvalidProfileID().WithDetail("profile_id", c.Params("user_profile_id"))
	}

	memoryID, err := kernel.ParseMemoryID(c.Params("memory_id"))
	if err != nil {
		return memory.ErrInvalidMemoryID().WithDetail("memory_id", c.Params("memory_id"))
	}

	if err := h.service.DeleteMemory(c.Context(), profileID, memoryID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
