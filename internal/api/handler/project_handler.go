package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelierhub/design-collab/internal/api/metrics"
	"github.com/atelierhub/design-collab/internal/core/domain"
	"github.com/atelierhub/design-collab/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /api/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project details"
// @Success      200   {object}  projectResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.service.Create(c.Request().Context(), user.ID, ports.ProjectInput{
		Name:           req.Name,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Budget:         req.Budget,
		ClientUsername: req.ClientUsername,
	})
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Client not found"})
		}
		return err
	}

	metrics.ProjectsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, projectResponse{Project: project})
}

// Update handles PUT /api/projects/:id — a full-field replace.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Replacement field values"
// @Success      200   {object}  projectResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), ports.ProjectInput{
		Name:           req.Name,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Budget:         req.Budget,
		ClientUsername: req.ClientUsername,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Project not found"})
		}
		return err
	}

	metrics.ProjectsTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, projectResponse{Project: project})
}

// Delete handles DELETE /api/projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Project not found"})
		}
		return err
	}

	metrics.ProjectsTotal.WithLabelValues("deleted").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Project deleted successfully"})
}

// List handles GET /api/projects — projects visible to the caller.
//
// @Summary      List projects visible to the caller
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Project
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	projects, err := h.service.ListFor(c.Request().Context(), user)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "No projects found"})
		}
		return err
	}

	if projects == nil {
		projects = []*domain.Project{}
	}
	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /api/projects/:id. A project outside the caller's scope is
// reported as not found, identically to a missing id.
//
// @Summary      Get a single project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	project, err := h.service.GetOne(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Project not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, project)
}
