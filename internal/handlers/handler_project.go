package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

// registerProjectRoutes registers the project CRUD routes and nests the
// per-project task, billing and document routes under /projects/:project_id.
func registerProjectRoutes(
	rg *gin.RouterGroup,
	projectService portssvc.ProjectSvcFacade,
	taskService portssvc.TaskSvcFacade,
	billingService portssvc.BillingSvcFacade,
	documentService portssvc.DocumentSvcFacade,
) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
	}

	projectSpecific := rg.Group("/projects/:project_id")
	{
		projectSpecific.GET("", h.getProject)
		projectSpecific.PUT("", h.updateProject)
		projectSpecific.DELETE("", h.deleteProject)

		registerProjectTaskRoutes(projectSpecific, taskService)
		registerProjectBillingRoutes(projectSpecific, billingService)
		registerProjectDocumentRoutes(projectSpecific, documentService)
	}
}

func (h *projectHandler) createProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects returns the caller's organization projects, newest-first, with
// optional ?status= filter and keyset pagination via ?limit= and ?nextToken=.
func (h *projectHandler) listProjects(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var status *domain.ProjectStatus
	if s := c.Query("status"); s != "" {
		ps := domain.ProjectStatus(s)
		status = &ps
	}

	limit := 0
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
			return
		}
		limit = parsed
	}

	projects, nextToken, err := h.projectService.ListProjects(c.Request.Context(), userID, status, limit, c.Query("nextToken"))
	if err != nil {
		respondError(c, err)
		return
	}

	var tokenPtr *string
	if nextToken != "" {
		tokenPtr = &nextToken
	}
	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects, tokenPtr))
}

func (h *projectHandler) getProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), userID, c.Param("project_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *projectHandler) updateProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), userID, c.Param("project_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *projectHandler) deleteProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), userID, c.Param("project_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
