package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo-api/internal/adapters/output/memory"
	"todo-api/internal/application"
	"todo-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTodosWithoutPaginationParams(t *testing.T) {
	repo := memory.NewTodoRepository()
	hdl := New(application.NewTodoService(repo), repo, validator.New())
	app := NewApp(Options{})
	app.Get("/bare", hdl.ListTodos)

	resp := do(t, app, http.MethodGet, "/bare?limit=5000", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "Server error", body.Type)
	assert.Equal(t, "Internal Server Error", body.Error)
}

func TestAccessLogReportsFailingErrorHandler(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return errors.New("broken pipe")
		},
	})
	app.Use(AccessLog())
	app.Get("/", func(c *fiber.Ctx) error {
		return errors.New("handler failed")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var logged *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Error handler failed" {
			logged = entry
		}
	}
	require.NotNil(t, logged)
	assert.Equal(t, logrus.ErrorLevel, logged.Level)
	assert.EqualError(t, logged.Data[logrus.ErrorKey].(error), "broken pipe")
}
