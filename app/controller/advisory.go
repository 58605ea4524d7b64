package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/dto"
	"github.com/vibast-solutions/ms-go-doclocks/app/entity"
	"github.com/vibast-solutions/ms-go-doclocks/app/service"
)

type AdvisoryLockController struct {
	locks  *service.AdvisoryLockService
	logger logrus.FieldLogger
}

func NewAdvisoryLockController(locks *service.AdvisoryLockService, logger logrus.FieldLogger) *AdvisoryLockController {
	return &AdvisoryLockController{locks: locks, logger: logger}
}

// Acquire handles POST /locks/advisory.
func (c *AdvisoryLockController) Acquire(ctx echo.Context) error {
	req, err := dto.AcquireAdvisoryFromEchoContext(ctx)
	if err != nil {
		return invalidBody(ctx)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}

	lock, err := c.locks.Acquire(ctx.Request().Context(), req.OwnerID, req.Target(), entity.AdvisoryType(req.LockType), req.Scope.Entity(), req.TTL(), req.Reason)
	if err != nil {
		return respondError(ctx, c.logger, err, "failed to acquire advisory lock")
	}
	return ctx.JSON(http.StatusOK, dto.NewAdvisoryLockResponse(lock))
}

func (c *AdvisoryLockController) Heartbeat(ctx echo.Context) error {
	req, err := dto.LockOwnerFromEchoContext(ctx)
	if err != nil {
		return invalidBody(ctx)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}

	lock, err := c.locks.Heartbeat(ctx.Request().Context(), req.LockID, req.OwnerID)
	if err != nil {
		return respondError(ctx, c.logger, err, "failed to heartbeat advisory lock")
	}
	return ctx.JSON(http.StatusOK, dto.NewAdvisoryLockResponse(lock))
}

func (c *AdvisoryLockController) Release(ctx echo.Context) error {
	req, err := dto.LockOwnerFromEchoContext(ctx)
	if err != nil {
		return invalidBody(ctx)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}

	if err := c.locks.Release(ctx.Request().Context(), req.LockID, req.OwnerID); err != nil {
		return respondError(ctx, c.logger, err, "failed to release advisory lock")
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "lock released"})
}

// List handles GET /locks/advisory and returns live locks only.
func (c *AdvisoryLockController) List(ctx echo.Context) error {
	q, err := dto.TargetQueryFromEchoContext(ctx)
	if err != nil {
		return invalidBody(ctx)
	}
	if err := q.Validate(); err != nil {
		return badRequest(ctx, err)
	}

	locks, err := c.locks.ListActive(ctx.Request().Context(), q.Target())
	if err != nil {
		return respondError(ctx, c.logger, err, "failed to list advisory locks")
	}
	return ctx.JSON(http.StatusOK, map[string]any{"locks": dto.NewAdvisoryLockList(locks)})
}
