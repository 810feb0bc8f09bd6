package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus enumerates the lifecycle states of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project is an organization-scoped construction project.
type Project struct {
	ProjectID       string           `json:"projectID" db:"project_id"`
	OrganizationID  string           `json:"organizationID" db:"organization_id"`
	Name            string           `json:"name" db:"name"`
	ProjectType     string           `json:"projectType" db:"project_type"`
	Status          ProjectStatus    `json:"status" db:"status"`
	ClientName      *string          `json:"clientName" db:"client_name"`
	ClientEmail     *string          `json:"clientEmail" db:"client_email"`
	ClientPhone     *string          `json:"clientPhone" db:"client_phone"`
	Address         *string          `json:"address" db:"address"`
	EstimatedBudget *decimal.Decimal `json:"estimatedBudget" db:"estimated_budget"`
	ActualCost      *decimal.Decimal `json:"actualCost" db:"actual_cost"`
	StartDate       *time.Time       `json:"startDate" db:"start_date"`
	EndDate         *time.Time       `json:"endDate" db:"end_date"`
	// ManagerProfileID references a profile; CreatedBy is immutable and blocks
	// deleting the profile on its own.
	ManagerProfileID *string `json:"managerProfileID" db:"manager_profile_id"`
	CreatedBy        string  `json:"createdBy" db:"created_by"`
	AuditFields
}
