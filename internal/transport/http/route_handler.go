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

type RouteHandler struct {
	routes *service.RouteService
}

func RegisterRoutes(e *echo.Echo, routeService *service.RouteService) {
	handler := &RouteHandler{routes: routeService}

	group := e.Group("/api/routes")
	group.GET("", handler.listRoutes)
	group.GET("/:id", handler.getRoute)
	group.POST("", handler.createRoute)
}

type routeCreateRequest struct {
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	LongDescription *string            `json:"longDescription"`
	Category        string             `json:"category"`
	HeroImage       string             `json:"heroImage"`
	Duration        int                `json:"duration"`
	Distance        float64            `json:"distance"`
	Difficulty      string             `json:"difficulty"`
	Stops           []domain.RouteStop `json:"stops"`
	IsPublished     bool               `json:"isPublished"`
	CreatedBy       string             `json:"createdBy"`
}

func (h *RouteHandler) listRoutes(c echo.Context) error {
	routes, err := h.routes.List(c.Request().Context(), parseRouteFilter(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list routes"))
	}
	return c.JSON(http.StatusOK, routes)
}

func (h *RouteHandler) getRoute(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("route id must be a valid UUID"))
	}

	route, err := h.routes.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRouteNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("route not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load route"))
	}
	return c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) createRoute(c echo.Context) error {
	var req routeCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	input := domain.NewRoute{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Category:        domain.RouteCategory(req.Category),
		HeroImage:       req.HeroImage,
		Duration:        req.Duration,
		Distance:        req.Distance,
		Difficulty:      domain.RouteDifficulty(req.Difficulty),
		Stops:           req.Stops,
		IsPublished:     req.IsPublished,
	}
	if trimmed := strings.TrimSpace(req.CreatedBy); trimmed != "" {
		creator, err := uuid.Parse(trimmed)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Invalid("invalid route data",
				[]domain.FieldError{{Field: "createdBy", Message: "must be a valid UUID"}}))
		}
		input.CreatedBy = &creator
	}

	route, err := h.routes.Create(c.Request().Context(), input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, util.Invalid("invalid route data", verr.Fields))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to create route"))
	}
	return c.JSON(http.StatusCreated, route)
}

// parseRouteFilter reads the discovery query parameters. "all" and absent
// values mean no filtering; a bucket value outside short/medium/long is
// ignored rather than rejected.
func parseRouteFilter(c echo.Context) domain.RouteFilter {
	filter := domain.RouteFilter{}

	if raw := strings.TrimSpace(c.QueryParam("category")); raw != "" && raw != "all" {
		category := domain.RouteCategory(raw)
		filter.Category = &category
	}
	if raw := strings.TrimSpace(c.QueryParam("difficulty")); raw != "" && raw != "all" {
		difficulty := domain.RouteDifficulty(raw)
		filter.Difficulty = &difficulty
	}
	if bucket, ok := parseBucket(c.QueryParam("duration")); ok {
		filter.Duration = &bucket
	}
	if bucket, ok := parseBucket(c.QueryParam("distance")); ok {
		filter.Distance = &bucket
	}
	return filter
}

func parseBucket(raw string) (domain.RangeBucket, bool) {
	switch domain.RangeBucket(strings.TrimSpace(raw)) {
	case domain.BucketShort:
		return domain.BucketShort, true
	case domain.BucketMedium:
		return domain.BucketMedium, true
	case domain.BucketLong:
		return domain.BucketLong, true
	}
	return "", false
}
