package http

import (
	"errors"
	"fmt"
	"time"

	"todo-api/internal/domain"
	"todo-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

const pageRequestKey = "page_request"

// PaginationParams parses the page and limit query parameters into a
// domain.PageRequest stored in the request locals. Missing or unparseable
// values fall back to the defaults; non-positive values are rejected before
// the handler runs. limit is capped at maxPageSize when it is positive.
func PaginationParams(maxPageSize int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		request, err := parsePageRequest(c, maxPageSize)
		if err != nil {
			return err
		}
		c.Locals(pageRequestKey, request)
		return c.Next()
	}
}

func parsePageRequest(c *fiber.Ctx, maxPageSize int) (domain.PageRequest, error) {
	page := c.QueryInt("page", domain.DefaultPage)
	limit := c.QueryInt("limit", domain.DefaultPageSize)
	if maxPageSize > 0 && limit > maxPageSize {
		limit = maxPageSize
	}
	return domain.NewPageRequest(page, limit)
}

// NotFound is the last handler of the chain
func NotFound(c *fiber.Ctx) error {
	return domain.NewPathNotFoundError(fmt.Sprintf("Route not found with - %s", c.OriginalURL()))
}

// AccessLog logs one line per request once the error handler has written
// the response.
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				logger.FromCtx(c).WithError(err).Error("Error handler failed")
				if sendErr := c.SendStatus(fiber.StatusInternalServerError); sendErr != nil {
					logger.FromCtx(c).WithError(sendErr).Error("Cannot send fallback status")
				}
			}
		}
		logger.FromCtx(c).WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"query":   string(c.Request().URI().QueryString()),
			"status":  c.Response().StatusCode(),
			"latency": time.Since(start).String(),
			"ip":      c.IP(),
		}).Info("HTTP request")
		return nil
	}
}

// ErrorHandler is the fiber error handler. It is the single place where
// errors become HTTP responses: the error is logged, its kind selects the
// status, and unclassified errors are answered with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return handleFiberError(c, fiberErr)
	}

	domainErr := domain.AsError(err)
	entry := logger.FromCtx(c).WithField("kind", domainErr.Kind.String())
	if domainErr.Kind == domain.KindUnclassified {
		entry.WithError(err).Error("Server exception")
	} else {
		entry.Warnf("Request failed - %s", domainErr.Error())
	}

	body := ErrorResponse{
		Type:  errorType(domainErr.Kind),
		Error: domainErr.PublicMessage(),
	}
	if domainErr.Kind == domain.KindValidation {
		body.Details = domainErr.Details
	}
	return c.Status(statusFor(domainErr.Kind)).JSON(body)
}

// handleFiberError answers errors raised by fiber itself, such as an
// oversized body. They keep their status and are labelled by it.
func handleFiberError(c *fiber.Ctx, fiberErr *fiber.Error) error {
	if fiberErr.Code == fiber.StatusNotFound {
		return ErrorHandler(c, domain.NewPathNotFoundError(fmt.Sprintf("Route not found with - %s", c.OriginalURL())))
	}
	entry := logger.FromCtx(c).WithField("status", fiberErr.Code)
	if fiberErr.Code >= fiber.StatusInternalServerError {
		entry.Error(fiberErr.Message)
	} else {
		entry.Warnf("Request failed - %s", fiberErr.Message)
	}
	return c.Status(fiberErr.Code).JSON(ErrorResponse{
		Type:  utils.StatusMessage(fiberErr.Code),
		Error: fiberErr.Message,
	})
}
