package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/service"
	"github.com/routewise/backend/internal/util"
)

type ProgressHandler struct {
	progress *service.ProgressService
}

func RegisterProgress(e *echo.Echo, progressService *service.ProgressService) {
	handler := &ProgressHandler{progress: progressService}

	group := e.Group("/api/users/:userId")
	group.GET("/routes/:routeId/progress", handler.getProgress)
	group.POST("/routes/:routeId/progress", handler.upsertProgress)
	group.GET("/completed-routes", handler.listCompletedRoutes)
}

type progressUpsertRequest struct {
	CurrentStopIndex *int                `json:"currentStopIndex"`
	IsCompleted      *bool               `json:"isCompleted"`
	PhotosShared     []domain.RoutePhoto `json:"photosShared"`
}

func (h *ProgressHandler) getProgress(c echo.Context) error {
	userID, routeID, err := parseProgressKey(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	record, err := h.progress.Get(c.Request().Context(), userID, routeID)
	if err != nil {
		if errors.Is(err, service.ErrProgressNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("route progress not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load route progress"))
	}
	return c.JSON(http.StatusOK, record)
}

func (h *ProgressHandler) upsertProgress(c echo.Context) error {
	userID, routeID, err := parseProgressKey(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	var req progressUpsertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	record, err := h.progress.Upsert(c.Request().Context(), userID, routeID, domain.ProgressPatch{
		CurrentStopIndex: req.CurrentStopIndex,
		IsCompleted:      req.IsCompleted,
		PhotosShared:     req.PhotosShared,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, util.Invalid("invalid progress data", verr.Fields))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to update route progress"))
	}
	return c.JSON(http.StatusOK, record)
}

func (h *ProgressHandler) listCompletedRoutes(c echo.Context) error {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("user id must be a valid UUID"))
	}

	routes, err := h.progress.CompletedRoutes(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list completed routes"))
	}
	return c.JSON(http.StatusOK, routes)
}

func parseProgressKey(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("user id must be a valid UUID")
	}
	routeID, err := uuid.Parse(strings.TrimSpace(c.Param("routeId")))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("route id must be a valid UUID")
	}
	return userID, routeID, nil
}
