package domain

// Organization is the tenant boundary: every other entity belongs to exactly one,
// directly or through its parent row.
type Organization struct {
	OrganizationID string `json:"organizationID" db:"organization_id"`
	Name           string `json:"name" db:"name"`
	AuditFields
}

// ProfileRole defines the possible roles a user can have within an organization.
type ProfileRole string

const (
	RoleAdmin      ProfileRole = "admin"
	RolePM         ProfileRole = "pm"
	RoleDesigner   ProfileRole = "designer"
	RoleAccountant ProfileRole = "accountant"
)

// Valid reports whether r is one of the known roles.
func (r ProfileRole) Valid() bool {
	switch r {
	case RoleAdmin, RolePM, RoleDesigner, RoleAccountant:
		return true
	}
	return false
}

// Profile is a user's membership record within one organization.
// user_id is unique: a user belongs to exactly one organization.
type Profile struct {
	ProfileID      string      `json:"profileID" db:"profile_id"`
	UserID         string      `json:"userID" db:"user_id"`
	OrganizationID string      `json:"organizationID" db:"organization_id"`
	FullName       string      `json:"fullName" db:"full_name"`
	Role           ProfileRole `json:"role" db:"role"`
	AuditFields
}

// IsManager reports whether the profile may mutate organization-scoped rows it
// does not own (the "role in {admin, pm}" predicate).
func (p *Profile) IsManager() bool {
	return p.Role == RoleAdmin || p.Role == RolePM
}

// IsBiller reports whether the profile may mutate invoices and payments
// (managers plus the accountant role).
func (p *Profile) IsBiller() bool {
	return p.IsManager() || p.Role == RoleAccountant
}
