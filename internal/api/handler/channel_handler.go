package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niko-dev25/threadirc/internal/api/metrics"
	"github.com/niko-dev25/threadirc/internal/core/ports"
)

// ChannelHandler handles HTTP requests for channel operations.
type ChannelHandler struct {
	service ports.ContentService
}

func NewChannelHandler(service ports.ContentService) *ChannelHandler {
	return &ChannelHandler{service: service}
}

// List returns all channels.
//
// @Summary      List channels
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  channelResponse
// @Router       /v1/channels [get]
func (h *ChannelHandler) List(c echo.Context) error {
	channels, err := h.service.ListChannels(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]channelResponse, len(channels))
	for i, ch := range channels {
		out[i] = toChannelResponse(ch)
	}
	return c.JSON(http.StatusOK, out)
}

// Create creates a new channel owned by the authenticated user.
//
// @Summary      Create a channel
// @Tags         channels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createChannelRequest  true  "Channel details"
// @Success      201   {object}  channelResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/channels [post]
func (h *ChannelHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createChannelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	channel, err := h.service.CreateChannel(c.Request().Context(), ports.CreateChannelInput{
		Name:        req.Name,
		Description: req.Description,
		ActorID:     actor,
	})
	if err != nil {
		return err
	}

	metrics.ChannelsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toChannelResponse(*channel))
}

// Get returns one channel with its threads sorted by last activity.
//
// @Summary      Get a channel with its threads
// @Tags         channels
// @Produce      json
// @Security     BearerAuth
// @Param        channelID  path      string  true  "Channel id"
// @Success      200        {object}  channelDetailResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1/channels/{channelID} [get]
func (h *ChannelHandler) Get(c echo.Context) error {
	detail, err := h.service.GetChannel(c.Request().Context(), c.Param("channelID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toChannelDetailResponse(detail))
}
