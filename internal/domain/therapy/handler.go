package therapy

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
	api.GET("/therapies", h.ListTherapies)
	api.POST("/therapies/project", h.ProjectLDL)
}

// ListTherapies returns the full agent registry with efficacy fractions and
// trial evidence links.
func (h *Handler) ListTherapies(c echo.Context) error {
	return c.JSON(http.StatusOK, Registry())
}

// ProjectRequest is the body of POST /therapies/project.
type ProjectRequest struct {
	BaselineLDL    float64  `json:"baseline_ldl"`
	PreAdmission   []string `json:"pre_admission"`
	NewlyInitiated []string `json:"newly_initiated"`
}

// ProjectLDL computes the post-therapy LDL projection and gating for the
// posted selection.
func (h *Handler) ProjectLDL(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sel := Selection{PreAdmission: req.PreAdmission, NewlyInitiated: req.NewlyInitiated}
	p, err := h.svc.ProjectSelection(c.Request().Context(), req.BaselineLDL, sel)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}
