package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niko-dev25/threadirc/internal/core/domain"
	"github.com/niko-dev25/threadirc/internal/core/ports"
)

// RoleHandler handles role management and the member directory.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// ListRoles returns all defined roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  roleResponse
// @Router       /v1/roles [get]
func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.service.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]roleResponse, len(roles))
	for i, r := range roles {
		out[i] = toRoleResponse(r)
	}
	return c.JSON(http.StatusOK, out)
}

// CreateRole defines a new role. Requires the manage_roles permission.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role definition"
// @Success      201   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/roles [post]
func (h *RoleHandler) CreateRole(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	perms := make([]domain.Permission, len(req.Permissions))
	for i, p := range req.Permissions {
		perms[i] = domain.Permission(p)
	}

	role, err := h.service.CreateRole(c.Request().Context(), ports.CreateRoleInput{
		Name:        req.Name,
		Style:       req.Style,
		Permissions: perms,
		ActorID:     actor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRoleResponse(*role))
}

// ListMembers returns every user with its resolved role and permissions.
//
// @Summary      List members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  memberResponse
// @Router       /v1/members [get]
func (h *RoleHandler) ListMembers(c echo.Context) error {
	members, err := h.service.ListMembers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]memberResponse, len(members))
	for i, m := range members {
		out[i] = toMemberResponse(m)
	}
	return c.JSON(http.StatusOK, out)
}

// AssignRole changes a member's role. Requires the assign_roles permission.
//
// @Summary      Assign a role to a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userID  path      string             true  "User id"
// @Param        body    body      assignRoleRequest  true  "Role assignment"
// @Success      200     {object}  userResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /v1/members/{userID}/role [put]
func (h *RoleHandler) AssignRole(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.AssignRole(c.Request().Context(), ports.AssignRoleInput{
		UserID:  c.Param("userID"),
		RoleID:  req.RoleID,
		ActorID: actor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(*user))
}
