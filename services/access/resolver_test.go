// File: services/access/resolver_test.go
package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookwise/models"
)

func testProvider() *models.Provider {
	return &models.Provider{
		CustomRoles: []models.CustomRole{
			{ID: "role-front-desk", Name: "Front desk", Permissions: models.PermissionSet{ManageBookings: true, ManageWaitlist: true}},
		},
		Staff: []models.Staff{
			{ID: "s-owner", Role: "owner", Active: true},
			{ID: "s-custom", Role: "member", CustomRoleID: "role-front-desk", Active: true},
			{ID: "s-grant", Role: "member", DirectGrant: &models.PermissionSet{ViewReports: true}, Active: true},
			{ID: "s-both", Role: "member", CustomRoleID: "role-front-desk", DirectGrant: &models.PermissionSet{ViewReports: true}, Active: true},
			{ID: "s-dangling", Role: "manager", CustomRoleID: "role-missing", Active: true},
			{ID: "s-unknown", Role: "contractor", Active: true},
			{ID: "s-inactive", Role: "owner", Active: false},
		},
	}
}

func TestPermissionsRoleDefaults(t *testing.T) {
	p := testProvider()
	owner, _ := p.StaffByID("s-owner")
	perms := Permissions(p, owner)
	assert.True(t, perms.ManageSchedule)
	assert.True(t, perms.ViewReports)
}

func TestPermissionsCustomRoleWins(t *testing.T) {
	p := testProvider()
	staff, _ := p.StaffByID("s-both")
	perms := Permissions(p, staff)
	assert.True(t, perms.ManageBookings, "custom role applies")
	assert.False(t, perms.ViewReports, "direct grant is shadowed by the custom role")
}

func TestPermissionsDirectGrantBeforeRoleDefault(t *testing.T) {
	p := testProvider()
	staff, _ := p.StaffByID("s-grant")
	perms := Permissions(p, staff)
	assert.True(t, perms.ViewReports)
	assert.False(t, perms.ManageBookings)
}

func TestPermissionsDanglingCustomRoleFallsThrough(t *testing.T) {
	p := testProvider()
	staff, _ := p.StaffByID("s-dangling")
	perms := Permissions(p, staff)
	assert.True(t, perms.ManageSchedule, "manager defaults apply when the custom role is gone")
	assert.False(t, perms.ViewReports)
}

func TestPermissionsUnknownRole(t *testing.T) {
	p := testProvider()
	staff, _ := p.StaffByID("s-unknown")
	assert.Equal(t, models.PermissionSet{}, Permissions(p, staff))
}

func TestCan(t *testing.T) {
	p := testProvider()
	manage := func(ps models.PermissionSet) bool { return ps.ManageBookings }

	assert.True(t, Can(p, "s-owner", manage))
	assert.True(t, Can(p, "s-custom", manage))
	assert.False(t, Can(p, "s-grant", manage))
	assert.False(t, Can(p, "s-inactive", manage), "inactive members hold nothing")
	assert.False(t, Can(p, "s-ghost", manage))
}
