package memoryapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nextalk-ai/nextalk/pkg/errx"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/memory"
	"github.com/nextalk-ai/nextalk/pkg/memory/memoryinfra"
	"github.com/nextalk-ai/nextalk/pkg/memory/memorysrv"
	"github.com/nextalk-ai/nextalk/pkg/profile"
	"github.com/nextalk-ai/nextalk/pkg/profile/profileinfra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, kernel.ProfileID) {
	t.Helper()

	profileRepo := profileinfra.NewInMemoryProfileRepository()
	memoryRepo := memoryinfra.NewInMemoryMemoryRepository()
	service := memorysrv.NewMemoryService(memoryRepo, profileRepo)

	p := profile.NewUserProfile("Ana", "", nil)
	require.NoError(t, profileRepo.Create(t.Context(), p))

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(fiber.Map{"error": e.Message, "code": e.Code})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	NewMemoryHandlers(service).RegisterRoutes(app.Group("/api/v1"))
	return app, p.ID
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSaveAndListMemories(t *testing.T) {
	app, profileID := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/memory/"+profileID.String(), fiber.Map{
		"mem_type": "preference",
		"content":  "likes sushi",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created memory.MemoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "preference", created.MemType)
	assert.Equal(t, "likes sushi", created.Content)
	assert.Nil(t, created.LastUsedAt)

	resp = doJSON(t, app, fiber.MethodGet, "/api/v1/memory/"+profileID.String(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list struct {
		Memories []memory.MemoryResponse `json:"memories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Memories, 1)
	assert.Equal(t, created.ID, list.Memories[0].ID)
}

func TestSaveMemoryRejectsEmptyContent(t *testing.T) {
	app, profileID := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/memory/"+profileID.String(), fiber.Map{
		"content": "  ",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMemoryRoutesRejectUnknownProfile(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/memory/"+kernel.NewProfileID().String(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/v1/memory/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteMemory(t *testing.T) {
	app, profileID := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/memory/"+profileID.String(), fiber.Map{
		"content": "likes sushi",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created memory.MemoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = doJSON(t, app, fiber.MethodDelete, "/api/v1/memory/"+profileID.String()+"/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/v1/memory/"+profileID.String()+"/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
