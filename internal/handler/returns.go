package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/biblioteca-service/internal/model"
)

func (h *Handler) ListReturns(c echo.Context) error {
	returns, err := h.svc.ListReturns(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, returns)
}

func (h *Handler) GetReturn(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ret, err := h.svc.GetReturn(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ret)
}

// CreateReturn godoc
// @Summary Record a book return with lateness and fine derived
// @Tags returns
// @Accept json
// @Produce json
// @Param return body model.CreateReturnRequest true "return"
// @Success 201 {object} model.Return
// @Failure 400 {object} errs.ValidationErrorResponse
// @Router /returns [post]
func (h *Handler) CreateReturn(c echo.Context) error {
	var req model.CreateReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ret, err := h.svc.CreateReturn(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, ret)
}

func (h *Handler) UpdateReturn(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ret, err := h.svc.UpdateReturn(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ret)
}

func (h *Handler) DeleteReturn(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteReturn(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
