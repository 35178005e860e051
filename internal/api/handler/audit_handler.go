package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/niko-dev25/threadirc/internal/core/ports"
)

// AuditHandler serves the moderation audit trail.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// Recent returns the newest audit entries, most recent first.
//
// @Summary      List recent audit events
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query    int  false  "Maximum entries to return (default 20, max 100)"
// @Success      200    {array}  domain.AuditEvent
// @Failure      403    {object}  errorResponse
// @Router       /v1/audit [get]
func (h *AuditHandler) Recent(c echo.Context) error {
	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	events, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
