// File: services/access/resolver.go
package access

import "bookwise/models"

// Resolver yields a staff member's permission set from one source. A false
// second return means the source has nothing to say and the next resolver in
// the chain is consulted.
type Resolver func(p *models.Provider, staff *models.Staff) (*models.PermissionSet, bool)

// Built-in role defaults. Owners hold every permission; managers everything
// but reports; members only see their own schedule surfaces.
var roleDefaults = map[string]models.PermissionSet{
	"owner":   {ManageSchedule: true, ManageBookings: true, ManageWaitlist: true, ViewReports: true},
	"manager": {ManageSchedule: true, ManageBookings: true, ManageWaitlist: true},
	"member":  {},
}

// customRole resolves through a provider-defined named role.
func customRole(p *models.Provider, staff *models.Staff) (*models.PermissionSet, bool) {
	if staff.CustomRoleID == "" {
		return nil, false
	}
	for i := range p.CustomRoles {
		if p.CustomRoles[i].ID == staff.CustomRoleID {
			perms := p.CustomRoles[i].Permissions
			return &perms, true
		}
	}
	// Dangling role reference; fall through rather than lock the member out.
	return nil, false
}

// directGrant resolves a per-member permission override.
func directGrant(_ *models.Provider, staff *models.Staff) (*models.PermissionSet, bool) {
	if staff.DirectGrant == nil {
		return nil, false
	}
	perms := *staff.DirectGrant
	return &perms, true
}

// roleDefault resolves the built-in defaults for the member's role string.
func roleDefault(_ *models.Provider, staff *models.Staff) (*models.PermissionSet, bool) {
	if perms, ok := roleDefaults[staff.Role]; ok {
		return &perms, true
	}
	return nil, false
}

var chain = []Resolver{customRole, directGrant, roleDefault}

// Permissions resolves the effective permission set for one staff member.
// Sources are consulted in precedence order and the first hit wins; an
// unknown role with no other source resolves to no permissions.
func Permissions(p *models.Provider, staff *models.Staff) models.PermissionSet {
	for _, resolve := range chain {
		if perms, ok := resolve(p, staff); ok {
			return *perms
		}
	}
	return models.PermissionSet{}
}

// Can reports whether the staff member holds the given capability.
func Can(p *models.Provider, staffID string, check func(models.PermissionSet) bool) bool {
	staff, ok := p.StaffByID(staffID)
	if !ok || !staff.Active {
		return false
	}
	return check(Permissions(p, staff))
}
