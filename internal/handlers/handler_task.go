package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// taskHandler handles HTTP requests for tasks and their work assignments.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

// registerProjectTaskRoutes registers the task collection routes nested under
// a specific project group.
func registerProjectTaskRoutes(projectGroup *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := projectGroup.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
	}
}

// registerTaskRoutes registers the task-specific and assignment routes that
// are addressed by their own IDs rather than through the parent project.
func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	taskSpecific := rg.Group("/tasks/:task_id")
	{
		taskSpecific.GET("", h.getTask)
		taskSpecific.PUT("", h.updateTask)
		taskSpecific.DELETE("", h.deleteTask)
		taskSpecific.POST("/assignments", h.createAssignment)
		taskSpecific.GET("/assignments", h.listAssignments)
	}

	assignments := rg.Group("/assignments/:assignment_id")
	{
		assignments.PUT("", h.updateAssignment)
		assignments.DELETE("", h.deleteAssignment)
	}
}

func (h *taskHandler) createTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, c.Param("project_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

func (h *taskHandler) listTasks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasksByProject(c.Request.Context(), userID, c.Param("project_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTasksResponse(tasks))
}

func (h *taskHandler) getTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(c.Request.Context(), userID, c.Param("task_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *taskHandler) updateTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), userID, c.Param("task_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *taskHandler) deleteTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), userID, c.Param("task_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *taskHandler) createAssignment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	assignment, err := h.taskService.CreateAssignment(c.Request.Context(), userID, c.Param("task_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

func (h *taskHandler) listAssignments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	assignments, err := h.taskService.ListAssignmentsByTask(c.Request.Context(), userID, c.Param("task_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssignmentsResponse(assignments))
}

func (h *taskHandler) updateAssignment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	assignment, err := h.taskService.UpdateAssignment(c.Request.Context(), userID, c.Param("assignment_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

func (h *taskHandler) deleteAssignment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteAssignment(c.Request.Context(), userID, c.Param("assignment_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
