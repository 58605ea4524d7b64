package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-doclocks/app/dto"
	"github.com/vibast-solutions/ms-go-doclocks/app/service"
)

type WriteGuardController struct {
	guard  *service.WriteGuardService
	logger logrus.FieldLogger
}

func NewWriteGuardController(guard *service.WriteGuardService, logger logrus.FieldLogger) *WriteGuardController {
	return &WriteGuardController{guard: guard, logger: logger}
}

// Check handles POST /locks/check. A blocked write answers 409 with the holder.
func (c *WriteGuardController) Check(ctx echo.Context) error {
	req, err := dto.CheckWriteFromEchoContext(ctx)
	if err != nil {
		return invalidBody(ctx)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}

	if err := c.guard.CheckWrite(ctx.Request().Context(), req.OwnerID, req.Target(), req.Scope.Entity()); err != nil {
		return respondError(ctx, c.logger, err, "failed to check write")
	}
	return ctx.JSON(http.StatusOK, map[string]bool{"allowed": true})
}
