package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// CreateProjectRequest defines data for creating a new project.
type CreateProjectRequest struct {
	Name             string               `json:"name" binding:"required"`
	ProjectType      string               `json:"projectType" binding:"required"`
	Status           domain.ProjectStatus `json:"status" binding:"omitempty,projectstatus"`
	ClientName       *string              `json:"clientName"`
	ClientEmail      *string              `json:"clientEmail" binding:"omitempty,email"`
	ClientPhone      *string              `json:"clientPhone"`
	Address          *string              `json:"address"`
	EstimatedBudget  *decimal.Decimal     `json:"estimatedBudget"`
	StartDate        *time.Time           `json:"startDate"`
	EndDate          *time.Time           `json:"endDate"`
	ManagerProfileID *string              `json:"managerProfileID"`
}

// UpdateProjectRequest defines data for partially updating a project.
type UpdateProjectRequest struct {
	Name             *string               `json:"name"`
	ProjectType      *string               `json:"projectType"`
	Status           *domain.ProjectStatus `json:"status" binding:"omitempty,projectstatus"`
	ClientName       *string               `json:"clientName"`
	ClientEmail      *string               `json:"clientEmail" binding:"omitempty,email"`
	ClientPhone      *string               `json:"clientPhone"`
	Address          *string               `json:"address"`
	EstimatedBudget  *decimal.Decimal      `json:"estimatedBudget"`
	ActualCost       *decimal.Decimal      `json:"actualCost"`
	StartDate        *time.Time            `json:"startDate"`
	EndDate          *time.Time            `json:"endDate"`
	ManagerProfileID *string               `json:"managerProfileID"`
}

// ProjectResponse defines data returned for a project.
type ProjectResponse struct {
	ProjectID        string               `json:"projectID"`
	OrganizationID   string               `json:"organizationID"`
	Name             string               `json:"name"`
	ProjectType      string               `json:"projectType"`
	Status           domain.ProjectStatus `json:"status"`
	ClientName       *string              `json:"clientName,omitempty"`
	ClientEmail      *string              `json:"clientEmail,omitempty"`
	ClientPhone      *string              `json:"clientPhone,omitempty"`
	Address          *string              `json:"address,omitempty"`
	EstimatedBudget  *decimal.Decimal     `json:"estimatedBudget,omitempty"`
	ActualCost       *decimal.Decimal     `json:"actualCost,omitempty"`
	StartDate        *time.Time           `json:"startDate,omitempty"`
	EndDate          *time.Time           `json:"endDate,omitempty"`
	ManagerProfileID *string              `json:"managerProfileID,omitempty"`
	CreatedBy        string               `json:"createdBy"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// ToProjectResponse converts domain.Project to DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:        p.ProjectID,
		OrganizationID:   p.OrganizationID,
		Name:             p.Name,
		ProjectType:      p.ProjectType,
		Status:           p.Status,
		ClientName:       p.ClientName,
		ClientEmail:      p.ClientEmail,
		ClientPhone:      p.ClientPhone,
		Address:          p.Address,
		EstimatedBudget:  p.EstimatedBudget,
		ActualCost:       p.ActualCost,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		ManagerProfileID: p.ManagerProfileID,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ListProjectsResponse wraps a paginated list of projects.
type ListProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListProjectsResponse converts a slice of domain.Project to DTO.
func ToListProjectsResponse(ps []domain.Project, nextToken *string) ListProjectsResponse {
	list := make([]ProjectResponse, len(ps))
	for i := range ps {
		list[i] = ToProjectResponse(&ps[i])
	}
	return ListProjectsResponse{Projects: list, NextToken: nextToken}
}
