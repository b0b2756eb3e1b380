package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/routewise/backend/internal/service"
	"github.com/routewise/backend/internal/util"
)

type UserHandler struct {
	users *service.UserService
}

func RegisterUsers(e *echo.Echo, userService *service.UserService) {
	handler := &UserHandler{users: userService}

	e.GET("/api/users/:id", handler.getUser)
}

func (h *UserHandler) getUser(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("user id must be a valid UUID"))
	}

	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("user not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load user"))
	}
	return c.JSON(http.StatusOK, user)
}
