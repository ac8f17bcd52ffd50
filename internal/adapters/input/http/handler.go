package http

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"todo-api/internal/domain"
	"todo-api/internal/ports/input"
	"todo-api/pkg/logger"
	"todo-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker is anything that can tell whether the store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.TodoService
	health    HealthChecker
	validator validator.Validator
}

// New func - Creates new HTTP handler. The validator is built once at
// startup and shared by every request.
func New(srv input.TodoService, health HealthChecker, v validator.Validator) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		health:    health,
		validator: v,
	}
}

// Root func
func (hdl *HTTPHandler) Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: "Todo server"})
}

// Ping func
func (hdl *HTTPHandler) Ping(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: "Pong"})
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if err := hdl.health.Ping(c.UserContext()); err != nil {
		logger.FromCtx(c).WithError(err).Error("Health check failed")
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// ListTodos godoc
// @Summary List todos
// @Description One page of todo items with first/last/prev/next links
// @Tags TODO
// @Produce json
// @param page query int false "page, defaults to 1"
// @param limit query int false "page size, defaults to 10"
// @Success 200 {object} domain.PagedResult
// @Header 200 {string} X-Pagination-Per-Page "page size"
// @Header 200 {string} X-Pagination-Current-Page "current page"
// @Header 200 {string} X-Pagination-Total-Pages "number of pages"
// @Header 200 {string} X-Pagination-Total-Entries "number of items"
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/todo [get]
func (hdl *HTTPHandler) ListTodos(c *fiber.Ctx) error {
	request, ok := c.Locals(pageRequestKey).(domain.PageRequest)
	if !ok {
		return domain.NewUnclassifiedError(errors.New("pagination parameters were not parsed"))
	}
	base, err := url.Parse(c.BaseURL() + c.OriginalURL())
	if err != nil {
		return domain.NewUnclassifiedError(err)
	}
	result, err := hdl.srv.List(c.UserContext(), request, base)
	if err != nil {
		return err
	}
	c.Set(HeaderPerPage, strconv.Itoa(result.PageSize))
	c.Set(HeaderCurrentPage, strconv.Itoa(result.Page))
	c.Set(HeaderTotalPages, strconv.Itoa(result.Pages))
	c.Set(HeaderTotalEntries, strconv.FormatInt(result.TotalCount, 10))
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetTodo godoc
// @Summary Get todo
// @Description Get a todo by id
// @Tags TODO
// @Produce json
// @param id path string true "todo id"
// @Success 200 {object} domain.TodoItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/todo/{id} [get]
func (hdl *HTTPHandler) GetTodo(c *fiber.Ctx) error {
	item, err := hdl.srv.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(item)
}

// CreateTodo godoc
// @Summary Create todo
// @Description Create todo, the (title, description) pair must be unique
// @Tags TODO
// @Accept application/json
// @Produce json
// @param CreateTodo body CreateTodoRequest true "CreateTodo"
// @Success 201 {object} domain.TodoItem
// @Header 201 {string} Location "url of the new todo"
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/todo [post]
func (hdl *HTTPHandler) CreateTodo(c *fiber.Ctx) error {
	var request CreateTodoRequest
	if err := hdl.bind(c, &request); err != nil {
		return err
	}
	item, err := hdl.srv.Add(c.UserContext(), request.toDomain())
	if err != nil {
		return err
	}
	c.Location(c.BaseURL() + strings.TrimSuffix(c.Path(), "/") + "/" + item.ID.String())
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateTodo godoc
// @Summary Update todo
// @Description Overwrite title, description and completed of a todo
// @Tags TODO
// @Accept application/json
// @param UpdateTodo body UpdateTodoRequest true "UpdateTodo"
// @Success 200
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/todo [put]
func (hdl *HTTPHandler) UpdateTodo(c *fiber.Ctx) error {
	var request UpdateTodoRequest
	if err := hdl.bind(c, &request); err != nil {
		return err
	}
	if err := hdl.srv.Update(c.UserContext(), request.toDomain()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusOK)
}

// DeleteTodo godoc
// @Summary Delete todo
// @Description Delete a todo by id
// @Tags TODO
// @param id path string true "todo id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/todo/{id} [delete]
func (hdl *HTTPHandler) DeleteTodo(c *fiber.Ctx) error {
	if err := hdl.srv.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// bind parses the JSON body into out and validates it. An empty body is
// validated as an empty object.
func (hdl *HTTPHandler) bind(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(out); err != nil {
			return domain.NewValidationError("Invalid request body", []domain.FieldError{{
				InstancePath: "",
				Params:       map[string]string{"rule": "json"},
				Message:      err.Error(),
			}})
		}
	}
	if err := hdl.validator.ValidateStruct(out); err != nil {
		details := fieldErrors(hdl.validator.Describe(err))
		if len(details) == 0 {
			return domain.NewUnclassifiedError(err)
		}
		return domain.NewValidationError("", details)
	}
	return nil
}
