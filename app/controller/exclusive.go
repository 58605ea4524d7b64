package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/dto"
	"github.com/vibast-solutions/ms-go-doclocks/app/service"
)

type ExclusiveLockController struct {
	locks  *service.ExclusiveLockService
	logger logrus.FieldLogger
}

// NewExclusiveLockController constructs the HTTP exclusive lock controller.
func NewExclusiveLockController(locks *service.ExclusiveLockService, logger logrus.FieldLogger) *ExclusiveLockController {
	return &ExclusiveLockController{locks: locks, logger: logger}
}

// Acquire handles POST /locks/exclusive.
func (c *ExclusiveLockController) Acquire(ctx echo.Context) error {
	req, err := dto.AcquireExclusiveFromEchoContext(ctx)
	if err != nil {
		return invalidBody(ctx)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}

	lock, err := c.locks.Acquire(ctx.Request().Context(), req.OwnerID, req.Target(), req.Section, req.TTL())
	if err != nil {
		return respondError(ctx, c.logger, err, "failed to acquire lock")
	}
	return ctx.JSON(http.StatusOK, dto.NewExclusiveLockResponse(lock))
}

// Heartbeat handles POST /locks/exclusive/:id/heartbeat.
func (c *ExclusiveLockController) Heartbeat(ctx echo.Context) error {
	req, err := dto.LockOwnerFromEchoContext(ctx)
	if err != nil {
		return invalidBody(ctx)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}

	lock, err := c.locks.Heartbeat(ctx.Request().Context(), req.LockID, req.OwnerID)
	if err != nil {
		return respondError(ctx, c.logger, err, "failed to heartbeat lock")
	}
	return ctx.JSON(http.StatusOK, dto.NewExclusiveLockResponse(lock))
}

// Release handles POST /locks/exclusive/:id/release.
func (c *ExclusiveLockController) Release(ctx echo.Context) error {
	req, err := dto.LockOwnerFromEchoContext(ctx)
	if err != nil {
		return invalidBody(ctx)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}

	if err := c.locks.Release(ctx.Request().Context(), req.LockID, req.OwnerID); err != nil {
		return respondError(ctx, c.logger, err, "failed to release lock")
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "lock released"})
}

// List handles GET /locks/exclusive.
func (c *ExclusiveLockController) List(ctx echo.Context) error {
	q, err := dto.TargetQueryFromEchoContext(ctx)
	if err != nil {
		return invalidBody(ctx)
	}
	if err := q.Validate(); err != nil {
		return badRequest(ctx, err)
	}

	locks, err := c.locks.List(ctx.Request().Context(), q.Target())
	if err != nil {
		return respondError(ctx, c.logger, err, "failed to list locks")
	}
	return ctx.JSON(http.StatusOK, map[string]any{"locks": dto.NewExclusiveLockList(locks)})
}
