package session

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/assessment"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/risk"
	"github.com/Spanday31/HOPE-8-CVD-RC/internal/domain/therapy"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/sessions", h.CreateSession)
	api.GET("/sessions/:id", h.GetSession)
	api.DELETE("/sessions/:id", h.DeleteSession)
	api.PUT("/sessions/:id/inputs", h.UpdateInputs)
	api.PUT("/sessions/:id/therapies", h.UpdateTherapies)
	api.POST("/sessions/:id/advance", h.AdvanceStep)
	api.POST("/sessions/:id/back", h.BackStep)
	api.GET("/sessions/:id/result", h.GetResult)
	api.GET("/sessions/:id/result/export", h.ExportResult)
}

func sessionID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	return id, nil
}

func mapErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func (h *Handler) CreateSession(c echo.Context) error {
	sess, err := h.svc.Create(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, sess)
}

func (h *Handler) GetSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) DeleteSession(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UpdateInputs(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var in risk.PatientInputs
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.UpdateInputs(c.Request().Context(), id, in)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) UpdateTherapies(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var sel therapy.Selection
	if err := c.Bind(&sel); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.UpdateTherapies(c.Request().Context(), id, sel)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) AdvanceStep(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.Advance(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) BackStep(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	sess, err := h.svc.Back(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) GetResult(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	res, err := h.svc.Result(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ExportResult(c echo.Context) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	res, err := h.svc.Result(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}

	c.Response().Header().Set("Content-Type", "text/csv")
	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", assessment.ExportFilename))
	c.Response().WriteHeader(http.StatusOK)

	return assessment.WriteCSV(c.Response(), res)
}
