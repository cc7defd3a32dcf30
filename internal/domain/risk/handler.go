package risk

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/risk/estimate", h.EstimateRisk)
}

// EstimateRisk computes the 5-year, 10-year and lifetime risk estimates for
// the posted patient inputs.
func (h *Handler) EstimateRisk(c echo.Context) error {
	var in PatientInputs
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	est, err := h.svc.Estimate(c.Request().Context(), &in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, est)
}
