package profileapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/profile"
	"github.com/nextalk-ai/nextalk/pkg/profile/profilesrv"
)

type ProfileHandlers struct {
	service *profilesrv.ProfileService
}

func NewProfileHandlers(service *profilesrv.ProfileService) *ProfileHandlers {
	return &ProfileHandlers{service: service}
}

func (h *ProfileHandlers) RegisterRoutes(router fiber.Router) {
	profiles := router.Group("/profiles")

	profiles.Post("/", h.CreateProfile)
	profiles.Get("/", h.ListProfiles)
	profiles.Get("/:profile_id", h.GetProfile)
}

func (h *ProfileHandlers) CreateProfile(c *fiber.Ctx) error {
	var req profile.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	p, err := h.service.CreateProfile(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(p.ToResponse())
}

func (h *ProfileHandlers) ListProfiles(c *fiber.Ctx) error {
	profiles, err := h.service.ListProfiles(c.Context())
	if err != nil {
		return err
	}

	responses := make([]profile.ProfileResponse, len(profiles))
	for i, p := range profiles {
		responses[i] = p.ToResponse()
	}

	return c.JSON(responses)
}

func (h *ProfileHandlers) GetProfile(c *fiber.Ctx) error {
	id, err := kernel.ParseProfileID(c.Params("profile_id"))
	if err != nil {
		return profile.ErrInvalidProfileID().WithDetail("profile_id", c.Params("profile_id"))
	}

	p, err := h.service.GetProfile(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(p.ToResponse())
}
