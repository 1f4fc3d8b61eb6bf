package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuditApp(t *testing.T) *fiber.App {
	t.Helper()

	app, orchestrator := setupChatApp(t)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	app.Get("/api/v1/audit", NewListAuditHandler(logger, orchestrator).Handle)
	app.Delete("/api/v1/audit", NewClearAuditHandler(logger, orchestrator).Handle)
	return app
}

func postChat(t *testing.T, app *fiber.App, message string) {
	t.Helper()

	body, err := json.Marshal(ChatRequest{Message: message})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListAuditHandler_ReturnsEntries(t *testing.T) {
	app := setupAuditApp(t)

	postChat(t, app, "first message")
	postChat(t, app, "second message")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/audit", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Count   int `json:"count"`
		Entries []struct {
			ID         string `json:"id"`
			UserInput  string `json:"user_input"`
			SourceType string `json:"source_type"`
		} `json:"entries"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, 2, payload.Count)
	require.Len(t, payload.Entries, 2)
	assert.Equal(t, "first message", payload.Entries[0].UserInput)
	assert.NotEmpty(t, payload.Entries[0].ID)
	assert.Equal(t, "ai_generated", payload.Entries[0].SourceType)
}

func TestClearAuditHandler_EmptiesLog(t *testing.T) {
	app := setupAuditApp(t)

	postChat(t, app, "a message to clear")

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/audit", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/audit", nil), -1)
	require.NoError(t, err)

	var payload struct {
		Count int `json:"count"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, 0, payload.Count)
}

func TestGetVersionHandler(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	app := fiber.New()
	app.Get("/version", NewGetVersionHandler(logger).Handle)

	resp, err := app.Test(httptest.NewRequest("GET", "/version", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Version string `json:"version"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.NotEmpty(t, payload.Version)
}
