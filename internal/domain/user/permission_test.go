package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		name       string
		role       Role
		permission Permission
		want       bool
	}{
		{"admin wildcard covers known permission", RoleAdmin, PermissionViewPayroll, true},
		{"admin wildcard covers arbitrary string", RoleAdmin, Permission("delete:everything"), true},
		{"manager views payroll", RoleManager, PermissionViewPayroll, true},
		{"manager edits employees", RoleManager, PermissionEditEmployees, true},
		{"manager edits attendance", RoleManager, PermissionEditAttendance, true},
		{"manager has no unlisted permission", RoleManager, Permission("edit:payroll"), false},
		{"employee views attendance", RoleEmployee, PermissionViewAttendance, true},
		{"employee cannot edit attendance", RoleEmployee, PermissionEditAttendance, false},
		{"employee cannot edit delivery", RoleEmployee, PermissionEditDelivery, false},
		{"cashier edits delivery", RoleCashier, PermissionEditDelivery, true},
		{"waiter cannot view payroll", RoleWaiter, PermissionViewPayroll, false},
		{"kitchen views audit", RoleKitchen, PermissionViewAudit, true},
		{"unknown role holds nothing", Role("owner"), PermissionViewAttendance, false},
		{"empty role holds nothing", Role(""), PermissionViewAttendance, false},
		{"wildcard is not granted to non-admins", RoleManager, PermissionAll, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasPermission(tc.role, tc.permission))
		})
	}
}

func TestRolePermissions_ManagerListIsLiteral(t *testing.T) {
	assert.Equal(t, []Permission{
		"view:employees", "view:attendance", "view:payroll", "view:delivery", "view:audit",
		"view:billing", "view:balance", "edit:employees", "edit:attendance", "edit:delivery", "edit:audit",
	}, RolePermissions[RoleManager])
}

func TestPermissions_ReturnsCopy(t *testing.T) {
	perms := Permissions(RoleEmployee)
	perms[0] = PermissionAll

	assert.False(t, HasPermission(RoleEmployee, Permission("anything")))
	assert.Empty(t, Permissions(Role("ghost")))
}

func TestRole_IsValid(t *testing.T) {
	for role := range RolePermissions {
		assert.True(t, role.IsValid(), role)
	}
	assert.False(t, Role("owner").IsValid())
}
