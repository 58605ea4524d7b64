package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/dto"
	"github.com/vibast-solutions/ms-go-doclocks/app/service"
)

// respondError maps service errors onto HTTP statuses. Conflicts carry the holder.
func respondError(ctx echo.Context, logger logrus.FieldLogger, err error, internalMessage string) error {
	var conflictErr *service.ConflictError
	switch {
	case errors.As(err, &conflictErr):
		return ctx.JSON(http.StatusConflict, dto.NewConflictResponse(conflictErr.Reason, conflictErr.Holder))
	case errors.Is(err, service.ErrInvalidInput):
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner):
		return ctx.JSON(http.StatusForbidden, map[string]string{"error": "lock is held by another owner"})
	case errors.Is(err, service.ErrNotFound):
		return ctx.JSON(http.StatusNotFound, map[string]string{"error": "lock not found"})
	case errors.Is(err, service.ErrExpired):
		return ctx.JSON(http.StatusGone, map[string]string{"error": "lock lease expired, acquire it again"})
	}
	logger.WithError(err).WithField("path", ctx.Path()).Error(internalMessage)
	return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": internalMessage})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
}
