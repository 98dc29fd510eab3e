package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventservice/user-directory/internal/core/ports"
)

// UserHandler translates HTTP requests into user workflow calls. It holds no
// business logic; failures propagate to the central error handler, which maps
// them to status codes and the error envelope.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Find handles GET /api/v3/users/:username.
//
// @Summary      Get a user by username
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  userResponse
// @Failure      400       {object}  map[string]any
// @Failure      500       {object}  map[string]any
// @Router       /api/v3/users/{username} [get]
func (h *UserHandler) Find(c echo.Context) error {
	user, err := h.service.Find(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create handles POST /api/v3/users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User details"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/v3/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Create(c.Request().Context(), toDomainUser(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Edit handles PUT /api/v3/users/:username.
//
// @Summary      Edit a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        username  path      string       true  "Username of the user to edit"
// @Param        body      body      userRequest  true  "New user details"
// @Success      200       {object}  userResponse
// @Failure      400       {object}  map[string]any
// @Failure      404       {object}  map[string]any
// @Failure      500       {object}  map[string]any
// @Router       /api/v3/users/{username} [put]
func (h *UserHandler) Edit(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.Edit(c.Request().Context(), toDomainUser(req), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /api/v3/users/:username. Success is a 200 with an
// empty body.
//
// @Summary      Delete a user
// @Tags         users
// @Param        username  path  string  true  "Username"
// @Success      200
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/v3/users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("username")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
