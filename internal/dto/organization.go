package dto

import (
	"time"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// --- Organization DTOs ---

// UpdateOrganizationRequest defines data for renaming an organization.
type UpdateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

// OrganizationResponse defines data returned for an organization.
type OrganizationResponse struct {
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToOrganizationResponse converts domain.Organization to DTO.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: o.OrganizationID,
		Name:           o.Name,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// --- Profile DTOs ---

// UpdateProfileRoleRequest defines data for changing a member's role (admin only).
type UpdateProfileRoleRequest struct {
	Role domain.ProfileRole `json:"role" binding:"required,oneof=admin pm designer accountant"`
}

// ProfileResponse defines data returned for an organization member.
type ProfileResponse struct {
	ProfileID      string             `json:"profileID"`
	UserID         string             `json:"userID"`
	OrganizationID string             `json:"organizationID"`
	FullName       string             `json:"fullName"`
	Role           domain.ProfileRole `json:"role"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// ToProfileResponse converts domain.Profile to DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID:      p.ProfileID,
		UserID:         p.UserID,
		OrganizationID: p.OrganizationID,
		FullName:       p.FullName,
		Role:           p.Role,
		CreatedAt:      p.CreatedAt,
	}
}

// ListProfilesResponse wraps a list of organization members.
type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// ToListProfilesResponse converts a slice of domain.Profile to DTO.
func ToListProfilesResponse(ps []domain.Profile) ListProfilesResponse {
	list := make([]ProfileResponse, len(ps))
	for i := range ps {
		list[i] = ToProfileResponse(&ps[i])
	}
	return ListProfilesResponse{Profiles: list}
}
