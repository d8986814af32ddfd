package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/biblioteca-service/internal/model"
)

const (
	defaultRecentLimit   = 10
	defaultFilteredLimit = 20
)

// RecentActivities godoc
// @Summary Recent audit entries, newest first
// @Tags activities
// @Produce json
// @Param limit query int false "max entries" default(10)
// @Success 200 {array} model.Activity
// @Router /activities/recent [get]
func (h *Handler) RecentActivities(c echo.Context) error {
	activities, err := h.svc.RecentActivities(c.Request().Context(), limitQuery(c, defaultRecentLimit))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, activities)
}

func (h *Handler) ActivitiesByType(c echo.Context) error {
	typ := model.ActivityType(c.Param("type"))
	if typ == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty type")
	}
	activities, err := h.svc.ActivitiesByType(c.Request().Context(), typ, limitQuery(c, defaultFilteredLimit))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, activities)
}

func (h *Handler) ActivitiesByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	activities, err := h.svc.ActivitiesByUser(c.Request().Context(), userID, limitQuery(c, defaultFilteredLimit))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, activities)
}
