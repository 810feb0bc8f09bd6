package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// organizationHandler handles organization and member-profile requests.
type organizationHandler struct {
	orgService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{orgService: os}
}

// registerOrganizationRoutes registers organization-scoped routes plus the
// caller's own profile lookup.
func registerOrganizationRoutes(rg *gin.RouterGroup, orgService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(orgService)

	rg.GET("/me", h.getMyProfile)

	orgs := rg.Group("/organizations/:organization_id")
	{
		orgs.GET("", h.getOrganization)
		orgs.PUT("", h.updateOrganization)
		orgs.DELETE("", h.deleteOrganization)
		orgs.GET("/profiles", h.listProfiles)
		orgs.PUT("/profiles/:profile_id/role", h.updateProfileRole)
	}
}

// getMyProfile returns the caller's membership profile, which the frontend
// needs to know the organization and role before any other call.
func (h *organizationHandler) getMyProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.orgService.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *organizationHandler) getOrganization(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	org, err := h.orgService.GetOrganizationByID(c.Request.Context(), userID, c.Param("organization_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *organizationHandler) updateOrganization(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	org, err := h.orgService.UpdateOrganization(c.Request.Context(), userID, c.Param("organization_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *organizationHandler) deleteOrganization(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.orgService.DeleteOrganization(c.Request.Context(), userID, c.Param("organization_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *organizationHandler) listProfiles(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profiles, err := h.orgService.ListProfiles(c.Request.Context(), userID, c.Param("organization_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListProfilesResponse(profiles))
}

func (h *organizationHandler) updateProfileRole(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.orgService.UpdateProfileRole(c.Request.Context(), userID, c.Param("organization_id"), c.Param("profile_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
