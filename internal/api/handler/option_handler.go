package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhub/design-collab/internal/api/metrics"
	"github.com/atelierhub/design-collab/internal/core/domain"
	"github.com/atelierhub/design-collab/internal/core/ports"
)

// OptionHandler handles HTTP requests for the shared option catalogue.
type OptionHandler struct {
	service ports.OptionService
}

func NewOptionHandler(service ports.OptionService) *OptionHandler {
	return &OptionHandler{service: service}
}

// List handles GET /api/options — the full catalogue, visible to any
// authenticated user.
//
// @Summary      List all design options
// @Tags         options
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Option
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/options [get]
func (h *OptionHandler) List(c echo.Context) error {
	options, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	if options == nil {
		options = []*domain.Option{}
	}
	return c.JSON(http.StatusOK, options)
}

// Save handles POST /api/options — the submitted preferences replace the
// entire catalogue.
//
// @Summary      Replace the option catalogue
// @Tags         options
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveOptionsRequest  true  "Design preference groups"
// @Success      200   {object}  saveOptionsResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/options [post]
func (h *OptionHandler) Save(c echo.Context) error {
	var req saveOptionsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	groups := make([]ports.PreferenceGroup, 0, len(req.DesignPreferences))
	for _, g := range req.DesignPreferences {
		groups = append(groups, ports.PreferenceGroup{TopicName: g.TopicName, Options: g.Options})
	}

	saved, err := h.service.Replace(c.Request().Context(), groups)
	if err != nil {
		return err
	}

	metrics.OptionReplacementsTotal.Inc()
	return c.JSON(http.StatusOK, saveOptionsResponse{
		Message:      "Options saved successfully",
		SavedOptions: saved,
	})
}
