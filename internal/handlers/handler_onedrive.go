package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// oneDriveHandler exposes the OneDrive integration. Connect, sync and
// disconnect share one action-selector endpoint, mirroring how the frontend
// drives the integration as a single state machine.
type oneDriveHandler struct {
	oneDriveService portssvc.OneDriveSvcFacade
}

func newOneDriveHandler(ods portssvc.OneDriveSvcFacade) *oneDriveHandler {
	return &oneDriveHandler{oneDriveService: ods}
}

func registerOneDriveRoutes(rg *gin.RouterGroup, oneDriveService portssvc.OneDriveSvcFacade) {
	h := newOneDriveHandler(oneDriveService)

	onedrive := rg.Group("/onedrive")
	{
		onedrive.POST("", h.handleAction)
		onedrive.GET("", h.getConnection)
		onedrive.GET("/files", h.listFiles)
	}
}

// handleAction dispatches on the request's action field.
func (h *oneDriveHandler) handleAction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.OneDriveActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	switch req.Action {
	case dto.ActionGetAuthURL:
		url, err := h.oneDriveService.GetAuthURL(ctx, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.AuthURLResponse{URL: url})

	case dto.ActionExchangeCode:
		connection, err := h.oneDriveService.ExchangeCode(ctx, userID, req.Code)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToConnectionResponse(connection))

	case dto.ActionSyncFiles:
		result, err := h.oneDriveService.SyncFiles(ctx, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)

	case dto.ActionDisconnect:
		if err := h.oneDriveService.Disconnect(ctx, userID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.DisconnectResponse{Success: true})

	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown action"})
	}
}

// getConnection returns the organization's connection, 404 when none exists.
func (h *oneDriveHandler) getConnection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	connection, err := h.oneDriveService.GetConnection(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConnectionResponse(connection))
}

// listFiles returns the mirrored remote file rows for the organization.
func (h *oneDriveHandler) listFiles(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	files, err := h.oneDriveService.ListFiles(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListOneDriveFilesResponse(files))
}
