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

type SavedRouteHandler struct {
	saved *service.SavedRouteService
}

func RegisterSavedRoutes(e *echo.Echo, savedService *service.SavedRouteService) {
	handler := &SavedRouteHandler{saved: savedService}

	group := e.Group("/api/users/:userId/saved-routes")
	group.GET("", handler.listSavedRoutes)
	group.POST("", handler.saveRoute)
	group.DELETE("/:routeId", handler.unsaveRoute)
}

func (h *SavedRouteHandler) listSavedRoutes(c echo.Context) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("user id must be a valid UUID"))
	}

	routes, err := h.saved.SavedRoutes(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list saved routes"))
	}
	return c.JSON(http.StatusOK, routes)
}

func (h *SavedRouteHandler) saveRoute(c echo.Context) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("user id must be a valid UUID"))
	}

	var req struct {
		RouteID string `json:"routeId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	routeID, err := uuid.Parse(strings.TrimSpace(req.RouteID))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("routeId must be a valid UUID"))
	}

	saved, err := h.saved.Save(c.Request().Context(), userID, routeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to save route"))
	}
	return c.JSON(http.StatusCreated, saved)
}

func (h *SavedRouteHandler) unsaveRoute(c echo.Context) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("user id must be a valid UUID"))
	}
	routeID, err := uuid.Parse(strings.TrimSpace(c.Param("routeId")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("route id must be a valid UUID"))
	}

	if err := h.saved.Unsave(c.Request().Context(), userID, routeID); err != nil {
		if errors.Is(err, service.ErrSavedRouteNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("saved route not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to unsave route"))
	}
	return c.NoContent(http.StatusNoContent)
}
